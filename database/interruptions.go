package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type InterruptionStore struct {
	DB *sql.DB
}

func NewInterruptionStore(conn *sql.DB) *InterruptionStore {
	return &InterruptionStore{DB: conn}
}

const interruptionColumns = `id, interruption_type, date, duration_minutes, project_phase,
	description, activity_id, project_id, developer_id`

func scanInterruption(row scannable) (*models.Interruption, error) {
	var i models.Interruption
	err := row.Scan(&i.ID, &i.InterruptionType, &i.Date, &i.DurationMinutes, &i.ProjectPhase,
		&i.Description, &i.ActivityID, &i.ProjectID, &i.DeveloperID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan interruption: %w", err)
	}
	return &i, nil
}

func (s *InterruptionStore) Create(ctx context.Context, i *models.Interruption) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO interruptions (interruption_type, date, duration_minutes, project_phase,
		                            description, activity_id, project_id, developer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		i.InterruptionType, i.Date, i.DurationMinutes, i.ProjectPhase,
		i.Description, i.ActivityID, i.ProjectID, i.DeveloperID,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("create interruption: %w", err)
	}
	return nil
}

func (s *InterruptionStore) Get(ctx context.Context, id int64) (*models.Interruption, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+interruptionColumns+` FROM interruptions WHERE id = $1`, id)
	return scanInterruption(row)
}

func (s *InterruptionStore) List(ctx context.Context) ([]models.Interruption, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+interruptionColumns+` FROM interruptions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list interruptions: %w", err)
	}
	defer rows.Close()
	return collectInterruptions(rows)
}

func (s *InterruptionStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.Interruption, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+interruptionColumns+` FROM interruptions WHERE developer_id = $1 ORDER BY id`, developerID)
	if err != nil {
		return nil, fmt.Errorf("list interruptions by developer: %w", err)
	}
	defer rows.Close()
	return collectInterruptions(rows)
}

func (s *InterruptionStore) Update(ctx context.Context, i *models.Interruption) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE interruptions
		 SET interruption_type = $1, date = $2, duration_minutes = $3, project_phase = $4,
		     description = $5, activity_id = $6, project_id = $7, developer_id = $8
		 WHERE id = $9`,
		i.InterruptionType, i.Date, i.DurationMinutes, i.ProjectPhase,
		i.Description, i.ActivityID, i.ProjectID, i.DeveloperID, i.ID)
	if err != nil {
		return fmt.Errorf("update interruption: %w", err)
	}
	return requireRow(result)
}

func (s *InterruptionStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM interruptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete interruption: %w", err)
	}
	return requireRow(result)
}

func collectInterruptions(rows *sql.Rows) ([]models.Interruption, error) {
	interruptions := []models.Interruption{}
	for rows.Next() {
		i, err := scanInterruption(rows)
		if err != nil {
			return nil, err
		}
		interruptions = append(interruptions, *i)
	}
	return interruptions, rows.Err()
}
