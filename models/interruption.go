package models

import "time"

type Interruption struct {
	ID               int64     `json:"id" db:"id"`
	InterruptionType string    `json:"interruption_type" db:"interruption_type"`
	Date             time.Time `json:"date" db:"date"`
	DurationMinutes  int       `json:"duration_minutes" db:"duration_minutes"`
	ProjectPhase     string    `json:"project_phase" db:"project_phase"`
	Description      string    `json:"description" db:"description"`
	ActivityID       *int64    `json:"activity_id,omitempty" db:"activity_id"`
	ProjectID        *int64    `json:"project_id,omitempty" db:"project_id"`
	DeveloperID      int64     `json:"developer_id" db:"developer_id"`
}
