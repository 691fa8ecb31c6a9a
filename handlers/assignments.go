package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type AssignmentHandler struct {
	assignments AssignmentStore
	projects    ProjectGetter
	workers     WorkerGetter
}

func NewAssignmentHandler(assignments AssignmentStore, projects ProjectGetter, workers WorkerGetter) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, projects: projects, workers: workers}
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignments.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Assignments not found")
		return
	}

	respondWithJSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := h.assignments.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Assignment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	assignments, err := h.assignments.ListByProject(r.Context(), projectID)
	if err != nil {
		respondStoreError(w, err, "Assignments not found")
		return
	}

	respondWithJSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) ListByDeveloper(w http.ResponseWriter, r *http.Request) {
	developerID, err := pathID(r, "developerID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	assignments, err := h.assignments.ListByDeveloper(r.Context(), developerID)
	if err != nil {
		respondStoreError(w, err, "Assignments not found")
		return
	}

	respondWithJSON(w, http.StatusOK, assignments)
}

// Create activates a new assignment. The store rejects the write when the
// developer already holds an active assignment on the same project, so two
// racing requests can never both succeed.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.AssignmentCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assignment, err := models.NewAssignment(payload, time.Now())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.projects.Get(r.Context(), assignment.ProjectID); err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}
	if _, err := h.workers.Get(r.Context(), assignment.DeveloperID); err != nil {
		respondStoreError(w, err, "Developer not found")
		return
	}

	if err := h.assignments.Create(r.Context(), assignment); err != nil {
		respondStoreError(w, err, "Assignment not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, assignment)
}

// Update patches an assignment. Reactivating one while another active
// assignment exists for the same pair fails with a conflict.
func (h *AssignmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.AssignmentUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assignment, err := h.assignments.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Assignment not found")
		return
	}

	if payload.ProjectID != nil && *payload.ProjectID != assignment.ProjectID {
		if _, err := h.projects.Get(r.Context(), *payload.ProjectID); err != nil {
			respondStoreError(w, err, "Project not found")
			return
		}
		assignment.ProjectID = *payload.ProjectID
	}
	if payload.DeveloperID != nil && *payload.DeveloperID != assignment.DeveloperID {
		if _, err := h.workers.Get(r.Context(), *payload.DeveloperID); err != nil {
			respondStoreError(w, err, "Developer not found")
			return
		}
		assignment.DeveloperID = *payload.DeveloperID
	}
	if payload.AssignedAt != nil {
		assignment.AssignedAt = payload.AssignedAt.UTC()
	}
	if payload.Active != nil {
		assignment.Active = *payload.Active
	}

	if err := h.assignments.Update(r.Context(), assignment); err != nil {
		respondStoreError(w, err, "Assignment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.assignments.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Assignment not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
