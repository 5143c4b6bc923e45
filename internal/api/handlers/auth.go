package handlers

import (
	"net/http"
	"time"

	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/api/mapper"
	"leadportaal/internal/models"
	"leadportaal/internal/service"
	"leadportaal/internal/utils"

	authdto "leadportaal/internal/api/dto/v1/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login verifies credentials and sets the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	// Get login data from context (set by validation middleware)
	loginData, exists := c.Get(constants.ContextKeyLogin)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Login data not found in context")
		return
	}

	req, ok := loginData.(authdto.LoginRequest)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid login data format")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password, utils.GetRealIP(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		constants.CookieToken,
		token,
		int(h.authService.TokenLifetime().Seconds()),
		constants.CookiePathRoot,
		utils.GetCookieDomain(),
		gin.Mode() == gin.ReleaseMode,
		true,
	)

	utils.HandleSuccess(c, authdto.LoginResponse{
		Username: user.Username,
		Role:     string(user.Role),
		IssuedAt: time.Now().UTC(),
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		constants.CookieToken,
		"",
		-1,
		constants.CookiePathRoot,
		utils.GetCookieDomain(),
		gin.Mode() == gin.ReleaseMode,
		true,
	)

	utils.HandleMessage(c, "Logged out")
}

// GetSession returns the authenticated user for the dashboard shell
func (h *AuthHandler) GetSession(c *gin.Context) {
	userModel, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Authentication required")
		return
	}

	user, ok := userModel.(*models.User)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid user type in context")
		return
	}

	utils.HandleSuccess(c, mapper.UserToSessionResponse(user))
}
