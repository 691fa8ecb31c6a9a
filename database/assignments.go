package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type AssignmentStore struct {
	DB *sql.DB
}

func NewAssignmentStore(conn *sql.DB) *AssignmentStore {
	return &AssignmentStore{DB: conn}
}

// The partial unique index on (project_id, developer_id) WHERE active is
// the activation guard: inserting or re-activating while another active
// row exists for the pair fails at commit, so the check-then-act race
// between concurrent requests cannot slip through.
var assignmentConstraints = map[string]error{
	"assignments_active_pair_idx": ErrActiveAssignmentExists,
}

const assignmentColumns = `id, project_id, developer_id, assigned_at, active`

func scanAssignment(row scannable) (*models.Assignment, error) {
	var a models.Assignment
	err := row.Scan(&a.ID, &a.ProjectID, &a.DeveloperID, &a.AssignedAt, &a.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan assignment: %w", err)
	}
	return &a, nil
}

func (s *AssignmentStore) Create(ctx context.Context, a *models.Assignment) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO assignments (project_id, developer_id, assigned_at, active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		a.ProjectID, a.DeveloperID, a.AssignedAt, a.Active,
	).Scan(&a.ID)
	if err != nil {
		return translateUniqueViolation(err, assignmentConstraints)
	}
	return nil
}

func (s *AssignmentStore) Get(ctx context.Context, id int64) (*models.Assignment, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id)
	return scanAssignment(row)
}

func (s *AssignmentStore) List(ctx context.Context) ([]models.Assignment, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (s *AssignmentStore) ListByProject(ctx context.Context, projectID int64) ([]models.Assignment, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by project: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (s *AssignmentStore) ListByDeveloper(ctx context.Context, developerID int64) ([]models.Assignment, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE developer_id = $1 ORDER BY id`, developerID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by developer: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func (s *AssignmentStore) Update(ctx context.Context, a *models.Assignment) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE assignments
		 SET project_id = $1, developer_id = $2, assigned_at = $3, active = $4
		 WHERE id = $5`,
		a.ProjectID, a.DeveloperID, a.AssignedAt, a.Active, a.ID)
	if err != nil {
		return translateUniqueViolation(err, assignmentConstraints)
	}
	return requireRow(result)
}

func (s *AssignmentStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return requireRow(result)
}

func collectAssignments(rows *sql.Rows) ([]models.Assignment, error) {
	assignments := []models.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}
