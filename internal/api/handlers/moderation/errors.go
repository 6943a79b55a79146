package moderation

import (
	"log"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/core/moderation"
	"Shibaboard/internal/core/store"
)

// handleServiceError converts moderation service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case moderation.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case moderation.IsConflict(err):
		handlers.WriteError(w, http.StatusConflict, "Conflict", err.Error())
	case store.IsUnavailable(err):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable, please retry")
	default:
		log.Printf("Unexpected moderation service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
