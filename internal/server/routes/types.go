package routes

import (
	"leadportaal/internal/api/handlers"
	"leadportaal/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Auth       *handlers.AuthHandler
	Quote      *handlers.QuoteHandler
	Freelancer *handlers.FreelancerHandler
	Dashboard  *handlers.DashboardHandler
	Health     *handlers.HealthHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	Auth       *middleware.AuthMiddleware
	Admin      *middleware.AdminMiddleware
}
