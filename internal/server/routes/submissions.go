package routes

import (
	"leadportaal/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSubmissionRoutes configures the public lead capture routes. Both
// endpoints share a tight rate limit since they are reachable without auth.
func SetupSubmissionRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	submitLimit := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   1,
		Burst: 5,
	})

	router.POST("/quotes",
		submitLimit,
		m.Validation.ValidateSubmitQuoteRequest(),
		h.Quote.Submit,
	)
	router.POST("/freelancers",
		submitLimit,
		m.Validation.ValidateSubmitFreelancerRequest(),
		h.Freelancer.Submit,
	)
}
