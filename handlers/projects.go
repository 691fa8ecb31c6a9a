package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type ProjectHandler struct {
	projects ProjectStore
	workers  WorkerGetter
}

func NewProjectHandler(projects ProjectStore, workers WorkerGetter) *ProjectHandler {
	return &ProjectHandler{projects: projects, workers: workers}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Projects not found")
		return
	}

	respondWithJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := models.NewProject(payload)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.workers.Get(r.Context(), project.LeaderID); err != nil {
		respondStoreError(w, err, "Leader not found")
		return
	}

	if err := h.projects.Create(r.Context(), project); err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	updated, err := models.NewProject(payload)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if updated.LeaderID != project.LeaderID {
		if _, err := h.workers.Get(r.Context(), updated.LeaderID); err != nil {
			respondStoreError(w, err, "Leader not found")
			return
		}
	}

	updated.ID = project.ID
	if err := h.projects.Update(r.Context(), updated); err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

type StatusUpdate struct {
	Status string `json:"status"`
}

func (h *ProjectHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	status := models.ProjectStatus(payload.Status)
	if !status.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid project status: "+payload.Status)
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	project.Status = status
	if err := h.projects.Update(r.Context(), project); err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
