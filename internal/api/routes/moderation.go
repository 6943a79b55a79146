package routes

import (
	"github.com/go-chi/chi/v5"

	modhandlers "Shibaboard/internal/api/handlers/moderation"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/moderation"
)

// RegisterModerationRoutes registers admin moderation endpoints on the router
// Every endpoint here requires the admin claim
func RegisterModerationRoutes(r chi.Router, service moderation.Service, auth *middleware.AuthMiddleware) {
	deletePostHandler := modhandlers.NewDeletePostHandler(service)
	deleteCommentHandler := modhandlers.NewDeleteCommentHandler(service)
	banHandler := modhandlers.NewBanUserHandler(service)

	r.With(auth.RequireAdmin).Delete("/api/moderation/posts/{postID}", deletePostHandler.HandleDeletePost)
	r.With(auth.RequireAdmin).Delete("/api/moderation/comments/{commentID}", deleteCommentHandler.HandleDeleteComment)
	r.With(auth.RequireAdmin).Post("/api/moderation/users/{userID}/ban", banHandler.HandleBanUser)
	r.With(auth.RequireAdmin).Post("/api/moderation/users/{userID}/unban", banHandler.HandleUnbanUser)
}
