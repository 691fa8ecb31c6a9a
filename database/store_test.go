package database

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestTranslateUniqueViolation(t *testing.T) {
	t.Parallel()

	constraints := map[string]error{
		"assignments_active_pair_idx": ErrActiveAssignmentExists,
		"workers_email_key":           ErrDuplicateEmail,
	}

	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"active pair index",
			&pq.Error{Code: "23505", Constraint: "assignments_active_pair_idx"},
			ErrActiveAssignmentExists,
		},
		{
			"email key",
			&pq.Error{Code: "23505", Constraint: "workers_email_key"},
			ErrDuplicateEmail,
		},
		{
			"unmapped constraint",
			&pq.Error{Code: "23505", Constraint: "something_else"},
			nil,
		},
		{
			"other pq error",
			&pq.Error{Code: "23503", Constraint: "workers_email_key"},
			nil,
		},
		{
			"plain error",
			errors.New("connection refused"),
			nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := translateUniqueViolation(tc.err, constraints)
			if tc.want != nil {
				if !errors.Is(got, tc.want) {
					t.Errorf("got %v, want %v", got, tc.want)
				}
				return
			}
			if !errors.Is(got, tc.err) {
				t.Errorf("got %v, want the original error %v", got, tc.err)
			}
		})
	}
}

func TestTranslateUniqueViolationNil(t *testing.T) {
	t.Parallel()

	if err := translateUniqueViolation(nil, nil); err != nil {
		t.Errorf("nil should pass through, got %v", err)
	}
}
