package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type StageStore struct {
	DB *sql.DB
}

func NewStageStore(conn *sql.DB) *StageStore {
	return &StageStore{DB: conn}
}

const stageColumns = `id, project_id, name, estimated_start_date, estimated_end_date, status`

func scanStage(row scannable) (*models.Stage, error) {
	var st models.Stage
	err := row.Scan(&st.ID, &st.ProjectID, &st.Name,
		&st.EstimatedStartDate, &st.EstimatedEndDate, &st.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan stage: %w", err)
	}
	return &st, nil
}

func (s *StageStore) Create(ctx context.Context, st *models.Stage) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO stages (project_id, name, estimated_start_date, estimated_end_date, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		st.ProjectID, st.Name, st.EstimatedStartDate, st.EstimatedEndDate, st.Status,
	).Scan(&st.ID)
	if err != nil {
		return fmt.Errorf("create stage: %w", err)
	}
	return nil
}

func (s *StageStore) Get(ctx context.Context, id int64) (*models.Stage, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+stageColumns+` FROM stages WHERE id = $1`, id)
	return scanStage(row)
}

func (s *StageStore) List(ctx context.Context) ([]models.Stage, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+stageColumns+` FROM stages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()
	return collectStages(rows)
}

func (s *StageStore) ListByProject(ctx context.Context, projectID int64) ([]models.Stage, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+stageColumns+` FROM stages WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list stages by project: %w", err)
	}
	defer rows.Close()
	return collectStages(rows)
}

func (s *StageStore) Update(ctx context.Context, st *models.Stage) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE stages
		 SET project_id = $1, name = $2, estimated_start_date = $3,
		     estimated_end_date = $4, status = $5
		 WHERE id = $6`,
		st.ProjectID, st.Name, st.EstimatedStartDate, st.EstimatedEndDate, st.Status, st.ID)
	if err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	return requireRow(result)
}

func (s *StageStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM stages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}
	return requireRow(result)
}

func collectStages(rows *sql.Rows) ([]models.Stage, error) {
	stages := []models.Stage{}
	for rows.Next() {
		st, err := scanStage(rows)
		if err != nil {
			return nil, err
		}
		stages = append(stages, *st)
	}
	return stages, rows.Err()
}
