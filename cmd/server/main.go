package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/api/routes"
	"Shibaboard/internal/config"
	"Shibaboard/internal/core/moderation"
	"Shibaboard/internal/core/notifications"
	"Shibaboard/internal/core/ratings"
	"Shibaboard/internal/core/reports"
	"Shibaboard/internal/core/trust"
	"Shibaboard/internal/core/visibility"
	postgresRepo "Shibaboard/internal/db/postgres"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	r.Use(rateLimiter.Middleware)

	// Viewer identity comes from the external identity provider's tokens
	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)
	r.Use(auth.WithViewer)

	// Repositories
	userRepo := postgresRepo.NewUserRepository(db)
	contentRepo := postgresRepo.NewContentRepository(db)
	ratingRepo := postgresRepo.NewRatingRepository(db)
	visibilityRepo := postgresRepo.NewVisibilityRepository(db)
	trustRepo := postgresRepo.NewTrustRepository(db)
	moderationRepo := postgresRepo.NewModerationRepository(db)
	reportRepo := postgresRepo.NewReportRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)

	// Services
	notificationService := notifications.NewNotificationService(notificationRepo, logger)
	targetValidator := ratings.NewCompositeTargetValidator(contentRepo.PostExists, contentRepo.CommentExists)
	ratingService := ratings.NewRatingService(ratingRepo, targetValidator, logger)
	trustService := trust.NewTrustService(trustRepo, userRepo)
	visibilityService := visibility.NewVisibilityService(
		visibilityRepo, contentRepo, visibility.NewPolicy(cfg.VisibilityWindow), logger)
	moderationService := moderation.NewModerationService(moderationRepo, notificationService, logger)
	reportService := reports.NewReportService(
		reportRepo, contentRepo, userRepo, notificationService, cfg.ReportDedupWindow, logger)

	// Routes
	routes.RegisterVoteRoutes(r, ratingService, auth)
	routes.RegisterCommentRoutes(r, visibilityService)
	routes.RegisterUserRoutes(r, trustService)
	routes.RegisterModerationRoutes(r, moderationService, auth)
	routes.RegisterReportRoutes(r, reportService, auth)
	routes.RegisterNotificationRoutes(r, notificationService, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Shibaboard starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
