package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type PerformanceReportStore struct {
	DB *sql.DB
}

func NewPerformanceReportStore(conn *sql.DB) *PerformanceReportStore {
	return &PerformanceReportStore{DB: conn}
}

const performanceReportColumns = `id, worker_id, assignment_id, stage_id, project_id,
	start_date, end_date, completed_tasks, delayed_tasks, reported_errors,
	reported_interruptions, progress_percent, rating, observations, reported_at`

func scanPerformanceReport(row scannable) (*models.PerformanceReport, error) {
	var r models.PerformanceReport
	err := row.Scan(&r.ID, &r.WorkerID, &r.AssignmentID, &r.StageID, &r.ProjectID,
		&r.StartDate, &r.EndDate, &r.CompletedTasks, &r.DelayedTasks, &r.ReportedErrors,
		&r.ReportedInterruptions, &r.ProgressPercent, &r.Rating, &r.Observations, &r.ReportedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan performance report: %w", err)
	}
	return &r, nil
}

func (s *PerformanceReportStore) Create(ctx context.Context, r *models.PerformanceReport) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO performance_reports (worker_id, assignment_id, stage_id, project_id,
		                                  start_date, end_date, completed_tasks, delayed_tasks,
		                                  reported_errors, reported_interruptions,
		                                  progress_percent, rating, observations, reported_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		r.WorkerID, r.AssignmentID, r.StageID, r.ProjectID,
		r.StartDate, r.EndDate, r.CompletedTasks, r.DelayedTasks,
		r.ReportedErrors, r.ReportedInterruptions,
		r.ProgressPercent, r.Rating, r.Observations, r.ReportedAt,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("create performance report: %w", err)
	}
	return nil
}

func (s *PerformanceReportStore) Get(ctx context.Context, id int64) (*models.PerformanceReport, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+performanceReportColumns+` FROM performance_reports WHERE id = $1`, id)
	return scanPerformanceReport(row)
}

func (s *PerformanceReportStore) List(ctx context.Context) ([]models.PerformanceReport, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+performanceReportColumns+` FROM performance_reports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list performance reports: %w", err)
	}
	defer rows.Close()
	return collectPerformanceReports(rows)
}

func (s *PerformanceReportStore) ListByWorker(ctx context.Context, workerID int64) ([]models.PerformanceReport, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+performanceReportColumns+` FROM performance_reports WHERE worker_id = $1 ORDER BY id`, workerID)
	if err != nil {
		return nil, fmt.Errorf("list performance reports by worker: %w", err)
	}
	defer rows.Close()
	return collectPerformanceReports(rows)
}

func (s *PerformanceReportStore) ListByProject(ctx context.Context, projectID int64) ([]models.PerformanceReport, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+performanceReportColumns+` FROM performance_reports WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list performance reports by project: %w", err)
	}
	defer rows.Close()
	return collectPerformanceReports(rows)
}

func (s *PerformanceReportStore) Update(ctx context.Context, r *models.PerformanceReport) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE performance_reports
		 SET worker_id = $1, assignment_id = $2, stage_id = $3, project_id = $4,
		     start_date = $5, end_date = $6, completed_tasks = $7, delayed_tasks = $8,
		     reported_errors = $9, reported_interruptions = $10,
		     progress_percent = $11, rating = $12, observations = $13
		 WHERE id = $14`,
		r.WorkerID, r.AssignmentID, r.StageID, r.ProjectID,
		r.StartDate, r.EndDate, r.CompletedTasks, r.DelayedTasks,
		r.ReportedErrors, r.ReportedInterruptions,
		r.ProgressPercent, r.Rating, r.Observations, r.ID)
	if err != nil {
		return fmt.Errorf("update performance report: %w", err)
	}
	return requireRow(result)
}

func (s *PerformanceReportStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM performance_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete performance report: %w", err)
	}
	return requireRow(result)
}

func collectPerformanceReports(rows *sql.Rows) ([]models.PerformanceReport, error) {
	reports := []models.PerformanceReport{}
	for rows.Next() {
		r, err := scanPerformanceReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}
