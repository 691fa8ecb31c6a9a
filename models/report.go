package models

import "time"

// PerformanceReport summarizes a worker's output over a date range.
type PerformanceReport struct {
	ID                    int64     `json:"id" db:"id"`
	WorkerID              int64     `json:"worker_id" db:"worker_id"`
	AssignmentID          *int64    `json:"assignment_id,omitempty" db:"assignment_id"`
	StageID               *int64    `json:"stage_id,omitempty" db:"stage_id"`
	ProjectID             *int64    `json:"project_id,omitempty" db:"project_id"`
	StartDate             time.Time `json:"start_date" db:"start_date"`
	EndDate               time.Time `json:"end_date" db:"end_date"`
	CompletedTasks        int       `json:"completed_tasks" db:"completed_tasks"`
	DelayedTasks          int       `json:"delayed_tasks" db:"delayed_tasks"`
	ReportedErrors        int       `json:"reported_errors" db:"reported_errors"`
	ReportedInterruptions int       `json:"reported_interruptions" db:"reported_interruptions"`
	ProgressPercent       float64   `json:"progress_percent" db:"progress_percent"`
	Rating                float64   `json:"rating" db:"rating"`
	Observations          string    `json:"observations" db:"observations"`
	ReportedAt            time.Time `json:"reported_at" db:"reported_at"`
}
