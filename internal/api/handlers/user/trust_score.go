package user

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/core/store"
	"Shibaboard/internal/core/trust"
	"Shibaboard/internal/core/users"
)

// TrustScoreHandler handles trust score lookups
type TrustScoreHandler struct {
	service trust.Service
}

// NewTrustScoreHandler creates a new trust score handler
func NewTrustScoreHandler(service trust.Service) *TrustScoreHandler {
	return &TrustScoreHandler{service: service}
}

// HandleGetTrustScore returns the user's reputation percentage
// GET /api/users/{userID}/trust-score
//
// percentage is null when the user has no votes on any solution comment;
// clients render that as 0% but it stays distinguishable from a true zero.
func (h *TrustScoreHandler) HandleGetTrustScore(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	score, err := h.service.ComputeTrustScore(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := map[string]interface{}{
		"userId":     userID,
		"percentage": nil,
	}
	if score != nil {
		response["percentage"] = score.Percent()
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}

// handleServiceError converts trust service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case store.IsUnavailable(err):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable, please retry")
	default:
		log.Printf("Unexpected trust service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
