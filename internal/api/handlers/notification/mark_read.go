package notification

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/notifications"
)

// MarkReadHandler handles read-state transitions
type MarkReadHandler struct {
	service notifications.Service
}

// NewMarkReadHandler creates a new mark read handler
func NewMarkReadHandler(service notifications.Service) *MarkReadHandler {
	return &MarkReadHandler{service: service}
}

// HandleMarkRead marks one of the viewer's notifications as read
// POST /api/notifications/{notificationID}/read
func (h *MarkReadHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(chi.URLParam(r, "notificationID"), 10, 64)
	if err != nil || notificationID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid notification id")
		return
	}

	viewer := middleware.GetViewer(r)
	if err := h.service.MarkRead(r.Context(), viewer.UserID, notificationID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"read": true,
	})
}
