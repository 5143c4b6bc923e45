package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/middleware"
	"leadportaal/internal/models"
	"leadportaal/internal/repository"
	"leadportaal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	repository.UserRepository
	users map[string]*models.User
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) RecordLogin(ctx context.Context, id string, ip string) error {
	return nil
}

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("wachtwoord123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users := map[string]*models.User{
		"beheer": {
			ID:           "u-1",
			Username:     "beheer",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		},
	}

	authService := service.NewAuthService(&mockUserRepository{users: users}, "test-secret", time.Hour)
	handler := NewAuthHandler(authService)
	validation := middleware.NewValidationMiddleware()

	router := gin.New()
	router.POST("/api/v1/auth/login", validation.ValidateLoginRequest(), handler.Login)
	router.POST("/api/v1/auth/logout", handler.Logout)
	return router
}

func sessionCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range resp.Result().Cookies() {
		if c.Name == constants.CookieToken {
			return c
		}
	}
	return nil
}

func TestAuthHandler_LoginSetsCookie(t *testing.T) {
	router := authRouter(t)

	body := `{"username": "beheer", "password": "wachtwoord123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "expected session cookie to be set")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	router := authRouter(t)

	body := `{"username": "beheer", "password": "verkeerd-wachtwoord"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Nil(t, sessionCookie(resp))
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	router := authRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username": "beheer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	router := authRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
