package notification

import (
	"net/http"
	"strconv"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/notifications"
)

// ListHandler handles notification listings
type ListHandler struct {
	service notifications.Service
}

// NewListHandler creates a new notification list handler
func NewListHandler(service notifications.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns the viewer's notifications, newest first
// GET /api/notifications?limit=20
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetViewer(r)

	limit := 0
	if param := r.URL.Query().Get("limit"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
			return
		}
		limit = parsed
	}

	items, err := h.service.List(r.Context(), viewer.UserID, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if items == nil {
		items = []*notifications.Notification{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": items,
	})
}
