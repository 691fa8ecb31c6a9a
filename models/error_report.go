package models

import "time"

// ErrorReport is an incident logged by a developer during a project phase.
// Activity and project references are optional.
type ErrorReport struct {
	ID           int64     `json:"id" db:"id"`
	ErrorType    string    `json:"error_type" db:"error_type"`
	Description  string    `json:"description" db:"description"`
	ProjectPhase string    `json:"project_phase" db:"project_phase"`
	ReportedAt   time.Time `json:"reported_at" db:"reported_at"`
	ActivityID   *int64    `json:"activity_id,omitempty" db:"activity_id"`
	ProjectID    *int64    `json:"project_id,omitempty" db:"project_id"`
	DeveloperID  int64     `json:"developer_id" db:"developer_id"`
}
