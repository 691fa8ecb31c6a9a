package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ResetTokenTTL is how long a password-reset token stays valid.
const ResetTokenTTL = 24 * time.Hour

type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Worker struct {
	ID                  int64      `json:"id" db:"id"`
	FirstName           string     `json:"first_name" db:"first_name"`
	LastName            string     `json:"last_name" db:"last_name"`
	Identification      string     `json:"identification" db:"identification"`
	Email               string     `json:"email" db:"email"`
	Profession          string     `json:"profession" db:"profession"`
	Address             string     `json:"address" db:"address"`
	Specialty           string     `json:"specialty" db:"specialty"`
	Password            string     `json:"-" db:"password"`
	Active              bool       `json:"active" db:"active"`
	RoleID              int64      `json:"role_id" db:"role_id"`
	RegisteredAt        time.Time  `json:"registered_at" db:"registered_at"`
	ResetToken          *string    `json:"-" db:"reset_token"`
	ResetTokenExpiresAt *time.Time `json:"-" db:"reset_token_expires_at"`
}

// FullName is used in outbound mail.
func (w *Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}

// IssueResetToken overwrites any previous token so only one is ever live.
func (w *Worker) IssueResetToken(now time.Time) string {
	token := uuid.New().String()
	expiry := now.Add(ResetTokenTTL)
	w.ResetToken = &token
	w.ResetTokenExpiresAt = &expiry
	return token
}

// ClearResetToken invalidates the stored token, both on consumption and
// when an expired token is presented.
func (w *Worker) ClearResetToken() {
	w.ResetToken = nil
	w.ResetTokenExpiresAt = nil
}

// ResetTokenExpired reports whether the stored token is past its expiry.
// A worker without a token counts as expired.
func (w *Worker) ResetTokenExpired(now time.Time) bool {
	if w.ResetToken == nil || w.ResetTokenExpiresAt == nil {
		return true
	}
	return !now.Before(*w.ResetTokenExpiresAt)
}

type WorkerCreate struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Identification string `json:"identification"`
	Email          string `json:"email"`
	Profession     string `json:"profession"`
	Address        string `json:"address"`
	Specialty      string `json:"specialty"`
	Password       string `json:"password"`
	RoleID         int64  `json:"role_id"`
}

func NewWorker(c WorkerCreate, now time.Time) (*Worker, error) {
	if c.FirstName == "" || c.LastName == "" {
		return nil, errors.New("first name and last name are required")
	}
	if c.Email == "" {
		return nil, errors.New("email is required")
	}
	if c.Identification == "" {
		return nil, errors.New("identification is required")
	}
	if c.Password == "" {
		return nil, errors.New("a password is required to register a worker")
	}
	if c.RoleID == 0 {
		return nil, errors.New("a role id is required to register a worker")
	}

	w := &Worker{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Identification: c.Identification,
		Email:          c.Email,
		Profession:     c.Profession,
		Address:        c.Address,
		Specialty:      c.Specialty,
		Password:       c.Password,
		Active:         true,
		RoleID:         c.RoleID,
		RegisteredAt:   now.UTC(),
	}
	w.IssueResetToken(now)
	return w, nil
}
