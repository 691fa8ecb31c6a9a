package database

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound                = errors.New("record not found")
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrDuplicateIdentification = errors.New("identification already registered")
	ErrDuplicateRoleName       = errors.New("role name already exists")
	ErrActiveAssignmentExists  = errors.New("developer already has an active assignment for this project")
)

// Store is the CRUD contract every entity store implements. Finder queries
// live on the concrete stores.
type Store[T any, ID comparable] interface {
	Create(ctx context.Context, record *T) error
	Get(ctx context.Context, id ID) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id ID) error
}

const uniqueViolationCode = "23505"

// translateUniqueViolation maps a Postgres unique violation on a named
// constraint to its domain error. Anything else passes through untouched.
func translateUniqueViolation(err error, constraints map[string]error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		if mapped, ok := constraints[pqErr.Constraint]; ok {
			return mapped
		}
	}
	return err
}
