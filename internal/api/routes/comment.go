package routes

import (
	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers/comments"
	"Shibaboard/internal/core/visibility"
)

// RegisterCommentRoutes registers comment listing endpoints on the router
// The visibility gate itself decides what anonymous viewers may see, so no
// auth requirement is mounted here
func RegisterCommentRoutes(r chi.Router, service visibility.Service) {
	getHandler := comments.NewGetCommentsHandler(service)

	r.Get("/api/posts/{postID}/comments", getHandler.HandleGetComments)
}
