package server

import (
	"io"
	"time"

	"leadportaal/internal/api/handlers"
	"leadportaal/internal/api/middleware"
	"leadportaal/internal/config"
	"leadportaal/internal/repository"
	"leadportaal/internal/server/routes"
	"leadportaal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// ServiceName identifies this process in traces and logs.
const ServiceName = "leadportaal-api"

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *sqlx.DB
}

// NewServer creates a new server instance and wires all handlers and routes
func NewServer(cfg *config.Config, db *sqlx.DB) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	routes.SetupGlobalMiddleware(router, ServiceName)

	// Repositories
	quoteRepo := repository.NewQuoteRepository(db)
	freelancerRepo := repository.NewFreelancerRepository(db)
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	activityService := service.NewActivityService(activityRepo)
	quoteService := service.NewQuoteService(quoteRepo, activityService)
	freelancerService := service.NewFreelancerService(freelancerRepo, activityService)
	dashboardService := service.NewDashboardService(quoteRepo, freelancerRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenLifetime)*time.Hour)

	h := &routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Quote:      handlers.NewQuoteHandler(quoteService),
		Freelancer: handlers.NewFreelancerHandler(freelancerService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService, activityService),
		Health:     handlers.NewHealthHandler(db),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		Auth:       middleware.NewAuthMiddleware(authService, userRepo),
		Admin:      middleware.NewAdminMiddleware(),
	}

	routes.Setup(router, h, m)

	return &Server{
		router: router,
		cfg:    cfg,
		db:     db,
	}
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
