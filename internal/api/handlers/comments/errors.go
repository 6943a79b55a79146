package comments

import (
	"log"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/core/content"
	"Shibaboard/internal/core/store"
	"Shibaboard/internal/core/visibility"
)

// handleServiceError converts visibility service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case content.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case visibility.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case store.IsUnavailable(err):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable, please retry")
	default:
		log.Printf("Unexpected visibility service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
