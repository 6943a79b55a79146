package routes

import (
	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers/vote"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/ratings"
)

// RegisterVoteRoutes registers vote endpoints on the router
func RegisterVoteRoutes(r chi.Router, service ratings.Service, auth *middleware.AuthMiddleware) {
	castHandler := vote.NewCastVoteHandler(service)
	retractHandler := vote.NewRetractVoteHandler(service)
	summariesHandler := vote.NewGetSummariesHandler(service)

	// Mutations require authentication; summaries serve anonymous viewers too
	r.With(auth.RequireAuth).Post("/api/votes", castHandler.HandleCastVote)
	r.With(auth.RequireAuth).Delete("/api/votes", retractHandler.HandleRetractVote)
	r.Get("/api/votes/summaries", summariesHandler.HandleGetSummaries)
}
