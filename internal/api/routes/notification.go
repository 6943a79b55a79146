package routes

import (
	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers/notification"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/notifications"
)

// RegisterNotificationRoutes registers notification endpoints on the router
func RegisterNotificationRoutes(r chi.Router, service notifications.Service, auth *middleware.AuthMiddleware) {
	listHandler := notification.NewListHandler(service)
	markReadHandler := notification.NewMarkReadHandler(service)

	r.With(auth.RequireAuth).Get("/api/notifications", listHandler.HandleList)
	r.With(auth.RequireAuth).Post("/api/notifications/{notificationID}/read", markReadHandler.HandleMarkRead)
}
