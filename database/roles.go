package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type RoleStore struct {
	DB *sql.DB
}

func NewRoleStore(conn *sql.DB) *RoleStore {
	return &RoleStore{DB: conn}
}

var roleConstraints = map[string]error{
	"roles_name_key": ErrDuplicateRoleName,
}

func (s *RoleStore) Create(ctx context.Context, r *models.Role) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO roles (name) VALUES ($1) RETURNING id`, r.Name).Scan(&r.ID)
	if err != nil {
		return translateUniqueViolation(err, roleConstraints)
	}
	return nil
}

func (s *RoleStore) Get(ctx context.Context, id int64) (*models.Role, error) {
	var r models.Role
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name FROM roles WHERE id = $1`, id).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &r, nil
}

func (s *RoleStore) List(ctx context.Context) ([]models.Role, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

func (s *RoleStore) Update(ctx context.Context, r *models.Role) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE roles SET name = $1 WHERE id = $2`, r.Name, r.ID)
	if err != nil {
		return translateUniqueViolation(err, roleConstraints)
	}
	return requireRow(result)
}

func (s *RoleStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return requireRow(result)
}
