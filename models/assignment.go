package models

import (
	"errors"
	"time"
)

// Assignment links a developer to a project. At most one assignment per
// (project, developer) pair may be active at any time; the store enforces
// this with a conditional write.
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	ProjectID   int64     `json:"project_id" db:"project_id"`
	DeveloperID int64     `json:"developer_id" db:"developer_id"`
	AssignedAt  time.Time `json:"assigned_at" db:"assigned_at"`
	Active      bool      `json:"active" db:"active"`
}

type AssignmentCreate struct {
	ProjectID   int64 `json:"project_id"`
	DeveloperID int64 `json:"developer_id"`
}

type AssignmentUpdate struct {
	ProjectID   *int64     `json:"project_id"`
	DeveloperID *int64     `json:"developer_id"`
	AssignedAt  *time.Time `json:"assigned_at"`
	Active      *bool      `json:"active"`
}

func NewAssignment(c AssignmentCreate, now time.Time) (*Assignment, error) {
	if c.ProjectID == 0 {
		return nil, errors.New("a project id is required for the assignment")
	}
	if c.DeveloperID == 0 {
		return nil, errors.New("a developer id is required for the assignment")
	}
	return &Assignment{
		ProjectID:   c.ProjectID,
		DeveloperID: c.DeveloperID,
		AssignedAt:  now.UTC(),
		Active:      true,
	}, nil
}
