package models

import (
	"errors"
	"time"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectInReview   ProjectStatus = "in_review"
	ProjectFinished   ProjectStatus = "finished"
	ProjectCancelled  ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectInReview, ProjectFinished, ProjectCancelled:
		return true
	}
	return false
}

type Project struct {
	ID               int64         `json:"id" db:"id"`
	Name             string        `json:"name" db:"name"`
	Description      string        `json:"description" db:"description"`
	StartDate        time.Time     `json:"start_date" db:"start_date"`
	EstimatedEndDate *time.Time    `json:"estimated_end_date,omitempty" db:"estimated_end_date"`
	LeaderID         int64         `json:"leader_id" db:"leader_id"`
	Status           ProjectStatus `json:"status" db:"status"`
}

type ProjectCreate struct {
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	StartDate        time.Time     `json:"start_date"`
	EstimatedEndDate *time.Time    `json:"estimated_end_date"`
	LeaderID         int64         `json:"leader_id"`
	Status           ProjectStatus `json:"status"`
}

func NewProject(c ProjectCreate) (*Project, error) {
	if c.Name == "" {
		return nil, errors.New("project name is required")
	}
	if c.StartDate.IsZero() {
		return nil, errors.New("project start date is required")
	}
	if c.LeaderID == 0 {
		return nil, errors.New("a leader id is required to create a project")
	}

	status := c.Status
	if status == "" {
		status = ProjectPlanning
	}
	if !status.Valid() {
		return nil, errors.New("invalid project status: " + string(status))
	}

	return &Project{
		Name:             c.Name,
		Description:      c.Description,
		StartDate:        c.StartDate,
		EstimatedEndDate: c.EstimatedEndDate,
		LeaderID:         c.LeaderID,
		Status:           status,
	}, nil
}
