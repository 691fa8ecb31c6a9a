package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type ActivityStore struct {
	DB *sql.DB
}

func NewActivityStore(conn *sql.DB) *ActivityStore {
	return &ActivityStore{DB: conn}
}

const activityColumns = `id, stage_id, developer_id, name, description,
	estimated_start_date, estimated_end_date, status`

func scanActivity(row scannable) (*models.Activity, error) {
	var a models.Activity
	err := row.Scan(&a.ID, &a.StageID, &a.DeveloperID, &a.Name, &a.Description,
		&a.EstimatedStartDate, &a.EstimatedEndDate, &a.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	return &a, nil
}

func (s *ActivityStore) Create(ctx context.Context, a *models.Activity) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO activities (stage_id, developer_id, name, description,
		                         estimated_start_date, estimated_end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		a.StageID, a.DeveloperID, a.Name, a.Description,
		a.EstimatedStartDate, a.EstimatedEndDate, a.Status,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (s *ActivityStore) Get(ctx context.Context, id int64) (*models.Activity, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1`, id)
	return scanActivity(row)
}

func (s *ActivityStore) List(ctx context.Context) ([]models.Activity, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

func (s *ActivityStore) ListByStage(ctx context.Context, stageID int64) ([]models.Activity, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE stage_id = $1 ORDER BY id`, stageID)
	if err != nil {
		return nil, fmt.Errorf("list activities by stage: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

func (s *ActivityStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.Activity, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE developer_id = $1 ORDER BY id`, developerID)
	if err != nil {
		return nil, fmt.Errorf("list activities by developer: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

func (s *ActivityStore) Update(ctx context.Context, a *models.Activity) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE activities
		 SET stage_id = $1, developer_id = $2, name = $3, description = $4,
		     estimated_start_date = $5, estimated_end_date = $6, status = $7
		 WHERE id = $8`,
		a.StageID, a.DeveloperID, a.Name, a.Description,
		a.EstimatedStartDate, a.EstimatedEndDate, a.Status, a.ID)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return requireRow(result)
}

func (s *ActivityStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return requireRow(result)
}

func collectActivities(rows *sql.Rows) ([]models.Activity, error) {
	activities := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}
