package vote

import (
	"encoding/json"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/ratings"
)

// CastVoteInput is the request body for casting a vote
type CastVoteInput struct {
	TargetKind string `json:"targetKind"`
	Kind       string `json:"kind"`
	TargetID   int64  `json:"targetId"`
}

// CastVoteHandler handles vote casting
type CastVoteHandler struct {
	service ratings.Service
}

// NewCastVoteHandler creates a new cast vote handler
func NewCastVoteHandler(service ratings.Service) *CastVoteHandler {
	return &CastVoteHandler{service: service}
}

// HandleCastVote upserts the viewer's vote and returns the fresh aggregate
// POST /api/votes
//
// Request body: { "targetKind": "post"|"comment", "targetId": 123, "kind": "like"|"dislike" }
func (h *CastVoteHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	var req CastVoteInput
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

	aggregate, err := h.service.CastVote(r.Context(), viewer.UserID, req.TargetKind, req.TargetID, req.Kind)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, aggregate)
}
