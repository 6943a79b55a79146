package routes

import (
	"github.com/go-chi/chi/v5"

	"Shibaboard/internal/api/handlers/report"
	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/reports"
)

// RegisterReportRoutes registers report endpoints on the router
// Filing goes through the service's own reporter check (unauthenticated
// filing is a distinct failure, not a routing concern); resolution is
// admin-only
func RegisterReportRoutes(r chi.Router, service reports.Service, auth *middleware.AuthMiddleware) {
	fileHandler := report.NewFileReportHandler(service)
	statusHandler := report.NewUpdateStatusHandler(service)

	r.Post("/api/reports", fileHandler.HandleFileReport)
	r.With(auth.RequireAdmin).Patch("/api/reports/{reportID}/status", statusHandler.HandleUpdateStatus)
}
