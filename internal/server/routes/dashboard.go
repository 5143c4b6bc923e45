package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes configures the protected dashboard routes. Everything
// here requires a valid session cookie and the admin role.
func SetupDashboardRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	protected := router.Group("")
	protected.Use(m.Auth.RequireAuth())
	protected.Use(m.Admin.RequireAdmin())

	// Quote management
	protected.GET("/quotes", h.Quote.List)
	protected.GET("/quotes/:id", h.Quote.Get)
	protected.PATCH("/quotes/:id/status", m.Validation.ValidateUpdateQuoteStatusRequest(), h.Quote.UpdateStatus)
	protected.DELETE("/quotes/:id", h.Quote.Delete)

	// Freelancer management
	protected.GET("/freelancers", h.Freelancer.List)
	protected.GET("/freelancers/:id", h.Freelancer.Get)
	protected.PATCH("/freelancers/:id/status", m.Validation.ValidateUpdateFreelancerStatusRequest(), h.Freelancer.UpdateStatus)
	protected.DELETE("/freelancers/:id", h.Freelancer.Delete)

	// Dashboard overview
	protected.GET("/dashboard/stats", h.Dashboard.Stats)
	protected.GET("/activities", h.Dashboard.Activities)
}
