package models

import (
	"errors"
	"time"
)

// TaskStatus is shared by stages and activities.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskDelayed    TaskStatus = "delayed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskDelayed:
		return true
	}
	return false
}

type Stage struct {
	ID                 int64      `json:"id" db:"id"`
	ProjectID          int64      `json:"project_id" db:"project_id"`
	Name               string     `json:"name" db:"name"`
	EstimatedStartDate *time.Time `json:"estimated_start_date,omitempty" db:"estimated_start_date"`
	EstimatedEndDate   *time.Time `json:"estimated_end_date,omitempty" db:"estimated_end_date"`
	Status             TaskStatus `json:"status" db:"status"`
}

type StageCreate struct {
	ProjectID          int64      `json:"project_id"`
	Name               string     `json:"name"`
	EstimatedStartDate *time.Time `json:"estimated_start_date"`
	EstimatedEndDate   *time.Time `json:"estimated_end_date"`
	Status             TaskStatus `json:"status"`
}

func NewStage(c StageCreate) (*Stage, error) {
	if c.ProjectID == 0 {
		return nil, errors.New("a project id is required to create a stage")
	}
	if c.Name == "" {
		return nil, errors.New("stage name is required")
	}

	status := c.Status
	if status == "" {
		status = TaskPending
	}
	if !status.Valid() {
		return nil, errors.New("invalid stage status: " + string(status))
	}

	return &Stage{
		ProjectID:          c.ProjectID,
		Name:               c.Name,
		EstimatedStartDate: c.EstimatedStartDate,
		EstimatedEndDate:   c.EstimatedEndDate,
		Status:             status,
	}, nil
}
