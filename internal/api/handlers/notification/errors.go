package notification

import (
	"errors"
	"log"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/core/notifications"
	"Shibaboard/internal/core/store"
)

// handleServiceError converts notification service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case notifications.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case errors.Is(err, notifications.ErrInvalidRecipient):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case store.IsUnavailable(err):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable, please retry")
	default:
		log.Printf("Unexpected notification service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
