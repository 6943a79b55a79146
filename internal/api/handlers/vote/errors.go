package vote

import (
	"log"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/core/ratings"
	"Shibaboard/internal/core/store"
)

// handleServiceError converts rating service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case ratings.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case ratings.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case store.IsUnavailable(err):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable, please retry")
	default:
		log.Printf("Unexpected vote service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
