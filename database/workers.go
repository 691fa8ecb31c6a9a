package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type WorkerStore struct {
	DB *sql.DB
}

func NewWorkerStore(conn *sql.DB) *WorkerStore {
	return &WorkerStore{DB: conn}
}

var workerConstraints = map[string]error{
	"workers_email_key":          ErrDuplicateEmail,
	"workers_identification_key": ErrDuplicateIdentification,
}

const workerColumns = `id, first_name, last_name, identification, email, profession,
	address, specialty, password, active, role_id, registered_at,
	reset_token, reset_token_expires_at`

type scannable interface {
	Scan(dest ...any) error
}

func scanWorker(row scannable) (*models.Worker, error) {
	var w models.Worker
	err := row.Scan(&w.ID, &w.FirstName, &w.LastName, &w.Identification, &w.Email,
		&w.Profession, &w.Address, &w.Specialty, &w.Password, &w.Active,
		&w.RoleID, &w.RegisteredAt, &w.ResetToken, &w.ResetTokenExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan worker: %w", err)
	}
	return &w, nil
}

func (s *WorkerStore) Create(ctx context.Context, w *models.Worker) error {
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO workers (first_name, last_name, identification, email, profession,
		                      address, specialty, password, active, role_id, registered_at,
		                      reset_token, reset_token_expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		w.FirstName, w.LastName, w.Identification, w.Email, w.Profession,
		w.Address, w.Specialty, w.Password, w.Active, w.RoleID, w.RegisteredAt,
		w.ResetToken, w.ResetTokenExpiresAt,
	).Scan(&w.ID)
	if err != nil {
		return translateUniqueViolation(err, workerConstraints)
	}
	return nil
}

func (s *WorkerStore) Get(ctx context.Context, id int64) (*models.Worker, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE id = $1`, id)
	return scanWorker(row)
}

func (s *WorkerStore) List(ctx context.Context) ([]models.Worker, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+workerColumns+` FROM workers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	return collectWorkers(rows)
}

// ListByActive filters on the soft-delete flag.
func (s *WorkerStore) ListByActive(ctx context.Context, active bool) ([]models.Worker, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE active = $1 ORDER BY id`, active)
	if err != nil {
		return nil, fmt.Errorf("list workers by active: %w", err)
	}
	defer rows.Close()
	return collectWorkers(rows)
}

// ListLeaders returns workers whose role carries the given name.
func (s *WorkerStore) ListLeaders(ctx context.Context, roleName string) ([]models.Worker, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT w.id, w.first_name, w.last_name, w.identification, w.email, w.profession,
		        w.address, w.specialty, w.password, w.active, w.role_id, w.registered_at,
		        w.reset_token, w.reset_token_expires_at
		 FROM workers w
		 JOIN roles r ON r.id = w.role_id
		 WHERE r.name = $1
		 ORDER BY w.id`, roleName)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	defer rows.Close()
	return collectWorkers(rows)
}

func (s *WorkerStore) FindByEmail(ctx context.Context, email string) (*models.Worker, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE LOWER(email) = LOWER($1) LIMIT 1`, email)
	return scanWorker(row)
}

func (s *WorkerStore) FindByResetToken(ctx context.Context, token string) (*models.Worker, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE reset_token = $1 LIMIT 1`, token)
	return scanWorker(row)
}

func (s *WorkerStore) Update(ctx context.Context, w *models.Worker) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE workers
		 SET first_name = $1, last_name = $2, identification = $3, email = $4,
		     profession = $5, address = $6, specialty = $7, password = $8,
		     active = $9, role_id = $10, reset_token = $11, reset_token_expires_at = $12
		 WHERE id = $13`,
		w.FirstName, w.LastName, w.Identification, w.Email,
		w.Profession, w.Address, w.Specialty, w.Password,
		w.Active, w.RoleID, w.ResetToken, w.ResetTokenExpiresAt, w.ID)
	if err != nil {
		return translateUniqueViolation(err, workerConstraints)
	}
	return requireRow(result)
}

func (s *WorkerStore) Delete(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return requireRow(result)
}

func collectWorkers(rows *sql.Rows) ([]models.Worker, error) {
	workers := []models.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

// requireRow turns a zero-row write into ErrNotFound.
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
