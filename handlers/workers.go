package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Xjua-nes/Juanes-ikernell/database"
	"github.com/Xjua-nes/Juanes-ikernell/models"
)

// LeaderRoleName is the role whose holders can lead projects.
const LeaderRoleName = "Leader"

type WorkerHandler struct {
	workers WorkerStore
	roles   RoleGetter
	mail    Notifier
}

func NewWorkerHandler(workers WorkerStore, roles RoleGetter, mail Notifier) *WorkerHandler {
	return &WorkerHandler{workers: workers, roles: roles, mail: mail}
}

// Register creates a worker: role is validated, the password is stored
// hashed, the account starts active with a standing 24h reset token, and
// the welcome mail (carrying the registration-time password) is sent
// without blocking the response.
func (h *WorkerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload models.WorkerCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plainPassword := payload.Password
	worker, err := models.NewWorker(payload, time.Now())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.roles.Get(r.Context(), worker.RoleID); err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error processing password")
		return
	}
	worker.Password = string(hashed)

	if err := h.workers.Create(r.Context(), worker); err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	// Reload to pick up store-assigned defaults before notifying.
	saved, err := h.workers.Get(r.Context(), worker.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Worker not found after save")
		return
	}

	h.mail.SendRegistrationEmail(saved, plainPassword)

	respondWithJSON(w, http.StatusCreated, saved)
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		workers []models.Worker
		err     error
	)

	if raw := r.URL.Query().Get("active"); raw != "" {
		workers, err = h.workers.ListByActive(r.Context(), raw == "true")
	} else {
		workers, err = h.workers.List(r.Context())
	}
	if err != nil {
		respondStoreError(w, err, "Workers not found")
		return
	}

	respondWithJSON(w, http.StatusOK, workers)
}

func (h *WorkerHandler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.workers.ListLeaders(r.Context(), LeaderRoleName)
	if err != nil {
		respondStoreError(w, err, "Leaders not found")
		return
	}

	respondWithJSON(w, http.StatusOK, leaders)
}

func (h *WorkerHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "Email query parameter is required")
		return
	}

	worker, err := h.workers.FindByEmail(r.Context(), email)
	if err != nil {
		respondStoreError(w, err, "Worker not found")
		return
	}

	respondWithJSON(w, http.StatusOK, worker)
}

func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	worker, err := h.workers.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Worker not found")
		return
	}

	respondWithJSON(w, http.StatusOK, worker)
}

// Update replaces the worker's profile fields. The password only changes
// when a new one is supplied; the reset-token fields are untouched.
func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.WorkerCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	worker, err := h.workers.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Worker not found")
		return
	}

	if payload.RoleID == 0 {
		respondWithError(w, http.StatusBadRequest, "A role id is required to update a worker")
		return
	}
	if _, err := h.roles.Get(r.Context(), payload.RoleID); err != nil {
		respondStoreError(w, err, "Role not found")
		return
	}

	worker.FirstName = payload.FirstName
	worker.LastName = payload.LastName
	worker.Identification = payload.Identification
	worker.Email = payload.Email
	worker.Profession = payload.Profession
	worker.Address = payload.Address
	worker.Specialty = payload.Specialty
	worker.RoleID = payload.RoleID

	if payload.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Error processing password")
			return
		}
		worker.Password = string(hashed)
	}

	if err := h.workers.Update(r.Context(), worker); err != nil {
		respondStoreError(w, err, "Worker not found")
		return
	}

	respondWithJSON(w, http.StatusOK, worker)
}

// Deactivate soft-deletes via the active flag.
func (h *WorkerHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *WorkerHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *WorkerHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	worker, err := h.workers.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Worker not found")
		return
	}

	worker.Active = active
	if err := h.workers.Update(r.Context(), worker); err != nil {
		respondStoreError(w, err, "Worker not found")
		return
	}

	respondWithJSON(w, http.StatusOK, worker)
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.workers.Delete(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Worker not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
