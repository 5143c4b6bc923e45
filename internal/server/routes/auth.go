package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication routes
func SetupAuthRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", m.Validation.ValidateLoginRequest(), h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/session", m.Auth.RequireAuth(), h.Auth.GetSession)
	}
}
