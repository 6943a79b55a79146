package routes

import (
	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers/user"
	"Shibaboard/internal/core/trust"
)

// RegisterUserRoutes registers user-facing endpoints on the router
func RegisterUserRoutes(r chi.Router, trustService trust.Service) {
	trustHandler := user.NewTrustScoreHandler(trustService)

	r.Get("/api/users/{userID}/trust-score", trustHandler.HandleGetTrustScore)
}
