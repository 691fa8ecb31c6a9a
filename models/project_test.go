package models

import (
	"testing"
	"time"
)

func TestProjectStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectInReview, ProjectFinished, ProjectCancelled} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []ProjectStatus{"", "done", "PLANNING"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestNewProjectDefaultsStatus(t *testing.T) {
	t.Parallel()

	p, err := NewProject(ProjectCreate{
		Name:      "Billing revamp",
		StartDate: time.Now(),
		LeaderID:  1,
	})
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	if p.Status != ProjectPlanning {
		t.Errorf("status = %q, want %q", p.Status, ProjectPlanning)
	}
}

func TestNewProjectValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		create ProjectCreate
	}{
		{"no name", ProjectCreate{StartDate: time.Now(), LeaderID: 1}},
		{"no start date", ProjectCreate{Name: "X", LeaderID: 1}},
		{"no leader", ProjectCreate{Name: "X", StartDate: time.Now()}},
		{"bad status", ProjectCreate{Name: "X", StartDate: time.Now(), LeaderID: 1, Status: "done"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewProject(tc.create); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTaskStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskDelayed} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if TaskStatus("paused").Valid() {
		t.Error(`"paused" should not be valid`)
	}
}

func TestNewStageDefaultsStatus(t *testing.T) {
	t.Parallel()

	st, err := NewStage(StageCreate{ProjectID: 1, Name: "Design"})
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	if st.Status != TaskPending {
		t.Errorf("status = %q, want %q", st.Status, TaskPending)
	}

	if _, err := NewStage(StageCreate{Name: "Design"}); err == nil {
		t.Error("stage without a project should fail")
	}
}

func TestNewActivity(t *testing.T) {
	t.Parallel()

	a, err := NewActivity(ActivityCreate{StageID: 1, DeveloperID: 2, Name: "Wire endpoint"})
	if err != nil {
		t.Fatalf("NewActivity: %v", err)
	}
	if a.Status != TaskPending {
		t.Errorf("status = %q, want %q", a.Status, TaskPending)
	}

	if _, err := NewActivity(ActivityCreate{DeveloperID: 2, Name: "X"}); err == nil {
		t.Error("activity without a stage should fail")
	}
	if _, err := NewActivity(ActivityCreate{StageID: 1, Name: "X"}); err == nil {
		t.Error("activity without a developer should fail")
	}
	if _, err := NewActivity(ActivityCreate{StageID: 1, DeveloperID: 2}); err == nil {
		t.Error("activity without a name should fail")
	}
}

func TestNewAssignment(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("COT", -5*3600))
	a, err := NewAssignment(AssignmentCreate{ProjectID: 1, DeveloperID: 2}, now)
	if err != nil {
		t.Fatalf("NewAssignment: %v", err)
	}
	if !a.Active {
		t.Error("new assignment should be active")
	}
	if a.AssignedAt.Location() != time.UTC {
		t.Error("assigned_at should be stored in UTC")
	}

	if _, err := NewAssignment(AssignmentCreate{DeveloperID: 2}, now); err == nil {
		t.Error("assignment without a project should fail")
	}
	if _, err := NewAssignment(AssignmentCreate{ProjectID: 1}, now); err == nil {
		t.Error("assignment without a developer should fail")
	}
}
