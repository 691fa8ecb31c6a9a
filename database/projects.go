package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type ProjectStore struct {
	DB *sql.DB
}

func NewProjectStore(conn *sql.DB) *ProjectStore {
	return &ProjectStore{DB: conn}
}

const projectColumns = `id, name, description, start_date, estimated_end_date, leader_id, status`

func scanProject(row scannable) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate,
		&p.EstimatedEndDate, &p.LeaderID, &p.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}

func (s *ProjectStore) Create(ctx context.Context, p *models.Project) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO projects (name, description, start_date, estimated_end_date, leader_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.Name, p.Description, p.StartDate, p.EstimatedEndDate, p.LeaderID, p.Status,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *ProjectStore) Get(ctx context.Context, id int64) (*models.Project, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *ProjectStore) Update(ctx context.Context, p *models.Project) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE projects
		 SET name = $1, description = $2, start_date = $3, estimated_end_date = $4,
		     leader_id = $5, status = $6
		 WHERE id = $7`,
		p.Name, p.Description, p.StartDate, p.EstimatedEndDate, p.LeaderID, p.Status, p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return requireRow(result)
}

func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return requireRow(result)
}
