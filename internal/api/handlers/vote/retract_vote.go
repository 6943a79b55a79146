package vote

import (
	"encoding/json"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/ratings"
)

// RetractVoteInput is the request body for retracting a vote
type RetractVoteInput struct {
	TargetKind string `json:"targetKind"`
	TargetID   int64  `json:"targetId"`
}

// RetractVoteHandler handles vote retraction
type RetractVoteHandler struct {
	service ratings.Service
}

// NewRetractVoteHandler creates a new retract vote handler
func NewRetractVoteHandler(service ratings.Service) *RetractVoteHandler {
	return &RetractVoteHandler{service: service}
}

// HandleRetractVote removes the viewer's vote and returns the fresh aggregate
// DELETE /api/votes
//
// Retracting a vote that doesn't exist is a no-op, not an error.
func (h *RetractVoteHandler) HandleRetractVote(w http.ResponseWriter, r *http.Request) {
	var req RetractVoteInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.TargetID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "targetId is required")
		return
	}

	viewer := middleware.GetViewer(r)
	if viewer == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	aggregate, err := h.service.RetractVote(r.Context(), viewer.UserID, req.TargetKind, req.TargetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, aggregate)
}
