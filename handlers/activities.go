package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type ActivityHandler struct {
	activities ActivityStore
	stages     StageGetter
	workers    WorkerGetter
}

func NewActivityHandler(activities ActivityStore, stages StageGetter, workers WorkerGetter) *ActivityHandler {
	return &ActivityHandler{activities: activities, stages: stages, workers: workers}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Activities not found")
		return
	}

	respondWithJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	activity, err := h.activities.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	respondWithJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) ListByStage(w http.ResponseWriter, r *http.Request) {
	stageID, err := pathID(r, "stageID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	activities, err := h.activities.ListByStage(r.Context(), stageID)
	if err != nil {
		respondStoreError(w, err, "Activities not found")
		return
	}

	respondWithJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) ListByDeveloper(w http.ResponseWriter, r *http.Request) {
	developerID, err := pathID(r, "developerID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	activities, err := h.activities.ListByDeveloper(r.Context(), developerID)
	if err != nil {
		respondStoreError(w, err, "Activities not found")
		return
	}

	respondWithJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.ActivityCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	activity, err := models.NewActivity(payload)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.stages.Get(r.Context(), activity.StageID); err != nil {
		respondStoreError(w, err, "Stage not found")
		return
	}
	if _, err := h.workers.Get(r.Context(), activity.DeveloperID); err != nil {
		respondStoreError(w, err, "Developer not found")
		return
	}

	if err := h.activities.Create(r.Context(), activity); err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.ActivityCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	activity, err := h.activities.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	updated, err := models.NewActivity(payload)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if updated.StageID != activity.StageID {
		if _, err := h.stages.Get(r.Context(), updated.StageID); err != nil {
			respondStoreError(w, err, "Stage not found")
			return
		}
	}
	if updated.DeveloperID != activity.DeveloperID {
		if _, err := h.workers.Get(r.Context(), updated.DeveloperID); err != nil {
			respondStoreError(w, err, "Developer not found")
			return
		}
	}

	updated.ID = activity.ID
	if err := h.activities.Update(r.Context(), updated); err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *ActivityHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	status := models.TaskStatus(payload.Status)
	if !status.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid activity status: "+payload.Status)
		return
	}

	activity, err := h.activities.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	activity.Status = status
	if err := h.activities.Update(r.Context(), activity); err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	respondWithJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.activities.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Activity not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
