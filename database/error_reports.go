package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type ErrorReportStore struct {
	DB *sql.DB
}

func NewErrorReportStore(conn *sql.DB) *ErrorReportStore {
	return &ErrorReportStore{DB: conn}
}

const errorReportColumns = `id, error_type, description, project_phase, reported_at,
	activity_id, project_id, developer_id`

func scanErrorReport(row scannable) (*models.ErrorReport, error) {
	var e models.ErrorReport
	err := row.Scan(&e.ID, &e.ErrorType, &e.Description, &e.ProjectPhase, &e.ReportedAt,
		&e.ActivityID, &e.ProjectID, &e.DeveloperID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan error report: %w", err)
	}
	return &e, nil
}

func (s *ErrorReportStore) Create(ctx context.Context, e *models.ErrorReport) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO error_reports (error_type, description, project_phase, reported_at,
		                            activity_id, project_id, developer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		e.ErrorType, e.Description, e.ProjectPhase, e.ReportedAt,
		e.ActivityID, e.ProjectID, e.DeveloperID,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("create error report: %w", err)
	}
	return nil
}

func (s *ErrorReportStore) Get(ctx context.Context, id int64) (*models.ErrorReport, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+errorReportColumns+` FROM error_reports WHERE id = $1`, id)
	return scanErrorReport(row)
}

func (s *ErrorReportStore) List(ctx context.Context) ([]models.ErrorReport, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+errorReportColumns+` FROM error_reports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list error reports: %w", err)
	}
	defer rows.Close()
	return collectErrorReports(rows)
}

func (s *ErrorReportStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.ErrorReport, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+errorReportColumns+` FROM error_reports WHERE developer_id = $1 ORDER BY id`, developerID)
	if err != nil {
		return nil, fmt.Errorf("list error reports by developer: %w", err)
	}
	defer rows.Close()
	return collectErrorReports(rows)
}

func (s *ErrorReportStore) Update(ctx context.Context, e *models.ErrorReport) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE error_reports
		 SET error_type = $1, description = $2, project_phase = $3, reported_at = $4,
		     activity_id = $5, project_id = $6, developer_id = $7
		 WHERE id = $8`,
		e.ErrorType, e.Description, e.ProjectPhase, e.ReportedAt,
		e.ActivityID, e.ProjectID, e.DeveloperID, e.ID)
	if err != nil {
		return fmt.Errorf("update error report: %w", err)
	}
	return requireRow(result)
}

func (s *ErrorReportStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM error_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete error report: %w", err)
	}
	return requireRow(result)
}

func collectErrorReports(rows *sql.Rows) ([]models.ErrorReport, error) {
	reports := []models.ErrorReport{}
	for rows.Next() {
		e, err := scanErrorReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *e)
	}
	return reports, rows.Err()
}
