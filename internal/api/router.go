package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/jobboard/job-board-api/docs"
	"github.com/jobboard/job-board-api/internal/api/handler"
	"github.com/jobboard/job-board-api/internal/api/middleware"
	"github.com/jobboard/job-board-api/internal/core/service"
	"github.com/jobboard/job-board-api/internal/infrastructure/config"
	"github.com/jobboard/job-board-api/internal/infrastructure/db/postgres"
	redisstore "github.com/jobboard/job-board-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	tokenStore := redisstore.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	jobService := service.NewJobService(jobRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	authRequired := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Auth routes ---
	e.POST("/auth/register_user", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)

	// --- Job routes ---
	jobs := e.Group("/jobs", authRequired)
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Create)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PUT("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	// --- Application routes ---
	jobs.POST("/:id/apply", applicationHandler.Apply)
	jobs.GET("/:id/applications/owner", applicationHandler.ListByOwner)
	e.GET("/applications/:id", applicationHandler.Get, authRequired)

	// --- Search ---
	e.GET("/search", jobHandler.Search, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operability endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
