package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type ErrorReportHandler struct {
	reports    ErrorReportStore
	workers    WorkerGetter
	activities ActivityGetter
	projects   ProjectGetter
}

func NewErrorReportHandler(reports ErrorReportStore, workers WorkerGetter, activities ActivityGetter, projects ProjectGetter) *ErrorReportHandler {
	return &ErrorReportHandler{reports: reports, workers: workers, activities: activities, projects: projects}
}

func (h *ErrorReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Error reports not found")
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

func (h *ErrorReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reports.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Error report not found")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func (h *ErrorReportHandler) ListByDeveloper(w http.ResponseWriter, r *http.Request) {
	developerID, err := pathID(r, "developerID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.reports.ListByDeveloper(r.Context(), developerID)
	if err != nil {
		respondStoreError(w, err, "Error reports not found")
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

func (h *ErrorReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var report models.ErrorReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.checkReferences(w, r, &report) {
		return
	}

	report.ID = 0
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now().UTC()
	}

	if err := h.reports.Create(r.Context(), &report); err != nil {
		respondStoreError(w, err, "Error report not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}

func (h *ErrorReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.reports.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Error report not found")
		return
	}

	var report models.ErrorReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.checkReferences(w, r, &report) {
		return
	}

	report.ID = existing.ID
	if report.ReportedAt.IsZero() {
		report.ReportedAt = existing.ReportedAt
	}

	if err := h.reports.Update(r.Context(), &report); err != nil {
		respondStoreError(w, err, "Error report not found")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func (h *ErrorReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reports.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Error report not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ErrorReportHandler) validate(report *models.ErrorReport) error {
	switch {
	case report.ErrorType == "":
		return errors.New("an error type is required")
	case report.Description == "":
		return errors.New("a description is required")
	case report.ProjectPhase == "":
		return errors.New("a project phase is required")
	case report.DeveloperID == 0:
		return errors.New("a developer id is required")
	}
	return nil
}

func (h *ErrorReportHandler) checkReferences(w http.ResponseWriter, r *http.Request, report *models.ErrorReport) bool {
	if _, err := h.workers.Get(r.Context(), report.DeveloperID); err != nil {
		respondStoreError(w, err, "Developer not found")
		return false
	}
	if report.ActivityID != nil {
		if _, err := h.activities.Get(r.Context(), *report.ActivityID); err != nil {
			respondStoreError(w, err, "Activity not found")
			return false
		}
	}
	if report.ProjectID != nil {
		if _, err := h.projects.Get(r.Context(), *report.ProjectID); err != nil {
			respondStoreError(w, err, "Project not found")
			return false
		}
	}
	return true
}
