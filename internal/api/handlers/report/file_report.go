package report

import (
	"encoding/json"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/reports"
)

// FileReportInput is the request body for filing a report
type FileReportInput struct {
	TargetKind string `json:"targetKind"`
	Reason     string `json:"reason"`
	TargetID   int64  `json:"targetId"`
}

// FileReportHandler handles report intake
type FileReportHandler struct {
	service reports.Service
}

// NewFileReportHandler creates a new file report handler
func NewFileReportHandler(service reports.Service) *FileReportHandler {
	return &FileReportHandler{service: service}
}

// HandleFileReport validates and persists an abuse report
// POST /api/reports
//
// Request body: { "targetKind": "user"|"post"|"comment", "targetId": 123, "reason": "..." }
func (h *FileReportHandler) HandleFileReport(w http.ResponseWriter, r *http.Request) {
	var req FileReportInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	var reporterID *int64
	if viewer := middleware.GetViewer(r); viewer != nil {
		reporterID = &viewer.UserID
	}

	filed, err := h.service.FileReport(r.Context(), reporterID, req.TargetKind, req.TargetID, req.Reason)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, filed)
}
