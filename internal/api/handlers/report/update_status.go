package report

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/reports"
)

// UpdateStatusInput is the request body for a report status transition
type UpdateStatusInput struct {
	Status string `json:"status"`
}

// UpdateStatusHandler handles admin report resolution
type UpdateStatusHandler struct {
	service reports.Service
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(service reports.Service) *UpdateStatusHandler {
	return &UpdateStatusHandler{service: service}
}

// HandleUpdateStatus transitions a report between statuses
// PATCH /api/reports/{reportID}/status
//
// pending -> accepted|rejected resolves the report; moving a resolved
// report back to pending explicitly re-opens it.
func (h *UpdateStatusHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
	if err != nil || reportID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid report id")
		return
	}

	var req UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	admin := middleware.GetViewer(r)
	updated, err := h.service.UpdateStatus(r.Context(), reportID, admin.UserID, req.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
