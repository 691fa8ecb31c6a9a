package models

import (
	"errors"
	"time"
)

type Activity struct {
	ID                 int64      `json:"id" db:"id"`
	StageID            int64      `json:"stage_id" db:"stage_id"`
	DeveloperID        int64      `json:"developer_id" db:"developer_id"`
	Name               string     `json:"name" db:"name"`
	Description        string     `json:"description" db:"description"`
	EstimatedStartDate *time.Time `json:"estimated_start_date,omitempty" db:"estimated_start_date"`
	EstimatedEndDate   *time.Time `json:"estimated_end_date,omitempty" db:"estimated_end_date"`
	Status             TaskStatus `json:"status" db:"status"`
}

type ActivityCreate struct {
	StageID            int64      `json:"stage_id"`
	DeveloperID        int64      `json:"developer_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	EstimatedStartDate *time.Time `json:"estimated_start_date"`
	EstimatedEndDate   *time.Time `json:"estimated_end_date"`
	Status             TaskStatus `json:"status"`
}

func NewActivity(c ActivityCreate) (*Activity, error) {
	if c.StageID == 0 {
		return nil, errors.New("a stage id is required to create an activity")
	}
	if c.DeveloperID == 0 {
		return nil, errors.New("a developer id is required to create an activity")
	}
	if c.Name == "" {
		return nil, errors.New("activity name is required")
	}

	status := c.Status
	if status == "" {
		status = TaskPending
	}
	if !status.Valid() {
		return nil, errors.New("invalid activity status: " + string(status))
	}

	return &Activity{
		StageID:            c.StageID,
		DeveloperID:        c.DeveloperID,
		Name:               c.Name,
		Description:        c.Description,
		EstimatedStartDate: c.EstimatedStartDate,
		EstimatedEndDate:   c.EstimatedEndDate,
		Status:             status,
	}, nil
}
