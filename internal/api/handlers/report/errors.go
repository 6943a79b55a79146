package report

import (
	"errors"
	"log"
	"net/http"

	"Shibaboard/internal/api/handlers"
	"Shibaboard/internal/core/reports"
	"Shibaboard/internal/core/store"
)

// handleServiceError converts report service errors to HTTP responses
// Dedup violations map to 429: the report is rate-limited, not malformed
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reports.ErrUnauthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", err.Error())
	case errors.Is(err, reports.ErrDuplicateReport):
		handlers.WriteError(w, http.StatusTooManyRequests, "DuplicateReport", err.Error())
	case reports.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	case reports.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case reports.IsConflict(err):
		handlers.WriteError(w, http.StatusConflict, "Conflict", err.Error())
	case store.IsUnavailable(err):
		handlers.WriteError(w, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable, please retry")
	default:
		log.Printf("Unexpected report service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
