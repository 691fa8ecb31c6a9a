package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type StageHandler struct {
	stages   StageStore
	projects ProjectGetter
}

func NewStageHandler(stages StageStore, projects ProjectGetter) *StageHandler {
	return &StageHandler{stages: stages, projects: projects}
}

func (h *StageHandler) List(w http.ResponseWriter, r *http.Request) {
	stages, err := h.stages.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Stages not found")
		return
	}

	respondWithJSON(w, http.StatusOK, stages)
}

func (h *StageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	stage, err := h.stages.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Stage not found")
		return
	}

	respondWithJSON(w, http.StatusOK, stage)
}

func (h *StageHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	stages, err := h.stages.ListByProject(r.Context(), projectID)
	if err != nil {
		respondStoreError(w, err, "Stages not found")
		return
	}

	respondWithJSON(w, http.StatusOK, stages)
}

func (h *StageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.StageCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	stage, err := models.NewStage(payload)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.projects.Get(r.Context(), stage.ProjectID); err != nil {
		respondStoreError(w, err, "Project not found")
		return
	}

	if err := h.stages.Create(r.Context(), stage); err != nil {
		respondStoreError(w, err, "Stage not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, stage)
}

func (h *StageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.StageCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	stage, err := h.stages.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Stage not found")
		return
	}

	updated, err := models.NewStage(payload)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if updated.ProjectID != stage.ProjectID {
		if _, err := h.projects.Get(r.Context(), updated.ProjectID); err != nil {
			respondStoreError(w, err, "Project not found")
			return
		}
	}

	updated.ID = stage.ID
	if err := h.stages.Update(r.Context(), updated); err != nil {
		respondStoreError(w, err, "Stage not found")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *StageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.stages.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Stage not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
