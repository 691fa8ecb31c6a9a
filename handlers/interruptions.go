package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type InterruptionHandler struct {
	interruptions InterruptionStore
	workers       WorkerGetter
	activities    ActivityGetter
	projects      ProjectGetter
}

func NewInterruptionHandler(interruptions InterruptionStore, workers WorkerGetter, activities ActivityGetter, projects ProjectGetter) *InterruptionHandler {
	return &InterruptionHandler{interruptions: interruptions, workers: workers, activities: activities, projects: projects}
}

func (h *InterruptionHandler) List(w http.ResponseWriter, r *http.Request) {
	interruptions, err := h.interruptions.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Interruptions not found")
		return
	}

	respondWithJSON(w, http.StatusOK, interruptions)
}

func (h *InterruptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	interruption, err := h.interruptions.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Interruption not found")
		return
	}

	respondWithJSON(w, http.StatusOK, interruption)
}

func (h *InterruptionHandler) ListByDeveloper(w http.ResponseWriter, r *http.Request) {
	developerID, err := pathID(r, "developerID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	interruptions, err := h.interruptions.ListByDeveloper(r.Context(), developerID)
	if err != nil {
		respondStoreError(w, err, "Interruptions not found")
		return
	}

	respondWithJSON(w, http.StatusOK, interruptions)
}

func (h *InterruptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var interruption models.Interruption
	if err := json.NewDecoder(r.Body).Decode(&interruption); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate(&interruption); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.checkReferences(w, r, &interruption) {
		return
	}

	interruption.ID = 0
	if err := h.interruptions.Create(r.Context(), &interruption); err != nil {
		respondStoreError(w, err, "Interruption not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, interruption)
}

func (h *InterruptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.interruptions.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Interruption not found")
		return
	}

	var interruption models.Interruption
	if err := json.NewDecoder(r.Body).Decode(&interruption); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate(&interruption); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.checkReferences(w, r, &interruption) {
		return
	}

	interruption.ID = existing.ID
	if err := h.interruptions.Update(r.Context(), &interruption); err != nil {
		respondStoreError(w, err, "Interruption not found")
		return
	}

	respondWithJSON(w, http.StatusOK, interruption)
}

func (h *InterruptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.interruptions.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Interruption not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *InterruptionHandler) validate(interruption *models.Interruption) error {
	switch {
	case interruption.InterruptionType == "":
		return errors.New("an interruption type is required")
	case interruption.Date.IsZero():
		return errors.New("a date is required")
	case interruption.DurationMinutes <= 0:
		return errors.New("the duration must be a positive number of minutes")
	case interruption.ProjectPhase == "":
		return errors.New("a project phase is required")
	case interruption.DeveloperID == 0:
		return errors.New("a developer id is required")
	}
	return nil
}

func (h *InterruptionHandler) checkReferences(w http.ResponseWriter, r *http.Request, interruption *models.Interruption) bool {
	if _, err := h.workers.Get(r.Context(), interruption.DeveloperID); err != nil {
		respondStoreError(w, err, "Developer not found")
		return false
	}
	if interruption.ActivityID != nil {
		if _, err := h.activities.Get(r.Context(), *interruption.ActivityID); err != nil {
			respondStoreError(w, err, "Activity not found")
			return false
		}
	}
	if interruption.ProjectID != nil {
		if _, err := h.projects.Get(r.Context(), *interruption.ProjectID); err != nil {
			respondStoreError(w, err, "Project not found")
			return false
		}
	}
	return true
}
