package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type PerformanceReportHandler struct {
	reports     PerformanceReportStore
	workers     WorkerGetter
	assignments AssignmentGetter
	stages      StageGetter
	projects    ProjectGetter
}

func NewPerformanceReportHandler(reports PerformanceReportStore, workers WorkerGetter, assignments AssignmentGetter, stages StageGetter, projects ProjectGetter) *PerformanceReportHandler {
	return &PerformanceReportHandler{
		reports:     reports,
		workers:     workers,
		assignments: assignments,
		stages:      stages,
		projects:    projects,
	}
}

func (h *PerformanceReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.List(r.Context())
	if err != nil {
		respondStoreError(w, err, "Performance reports not found")
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

func (h *PerformanceReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reports.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Performance report not found")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func (h *PerformanceReportHandler) ListByWorker(w http.ResponseWriter, r *http.Request) {
	workerID, err := pathID(r, "workerID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.reports.ListByWorker(r.Context(), workerID)
	if err != nil {
		respondStoreError(w, err, "Performance reports not found")
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

func (h *PerformanceReportHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.reports.ListByProject(r.Context(), projectID)
	if err != nil {
		respondStoreError(w, err, "Performance reports not found")
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

func (h *PerformanceReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var report models.PerformanceReport
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
		respondStoreError(w, err, "Performance report not found")
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}

func (h *PerformanceReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.reports.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Performance report not found")
		return
	}

	var report models.PerformanceReport
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
		respondStoreError(w, err, "Performance report not found")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func (h *PerformanceReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reports.Delete(r.Context(), id); err != nil {
		respondStoreError(w, err, "Performance report not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PerformanceReportHandler) validate(report *models.PerformanceReport) error {
	switch {
	case report.WorkerID == 0:
		return errors.New("a worker id is required")
	case report.StartDate.IsZero():
		return errors.New("a start date is required")
	case report.EndDate.IsZero():
		return errors.New("an end date is required")
	case report.EndDate.Before(report.StartDate):
		return errors.New("the end date must not precede the start date")
	}
	return nil
}

func (h *PerformanceReportHandler) checkReferences(w http.ResponseWriter, r *http.Request, report *models.PerformanceReport) bool {
	if _, err := h.workers.Get(r.Context(), report.WorkerID); err != nil {
		respondStoreError(w, err, "Worker not found")
		return false
	}
	if report.AssignmentID != nil {
		if _, err := h.assignments.Get(r.Context(), *report.AssignmentID); err != nil {
			respondStoreError(w, err, "Assignment not found")
			return false
		}
	}
	if report.StageID != nil {
		if _, err := h.stages.Get(r.Context(), *report.StageID); err != nil {
			respondStoreError(w, err, "Stage not found")
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
