package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leadportaal/internal/logging"
	"leadportaal/internal/models"
	"leadportaal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims are the JWT claims carried by the dashboard session cookie.
type TokenClaims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles dashboard login, token issuing and verification.
type AuthService struct {
	repo     repository.UserRepository
	secret   []byte
	lifetime time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(repo repository.UserRepository, secret string, lifetime time.Duration) *AuthService {
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &AuthService{repo: repo, secret: []byte(secret), lifetime: lifetime}
}

// TokenLifetime returns how long issued tokens stay valid.
func (s *AuthService) TokenLifetime() time.Duration {
	return s.lifetime
}

// Login verifies the credentials and returns the user with a signed token.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password, ip string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logging.GetGlobalLogger().Warn("[AUDIT] LOGIN_FAILED | IP: %s | Reason: unknown user %q", ip, username)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", translateRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logging.GetGlobalLogger().Warn("[AUDIT] LOGIN_FAILED | IP: %s | Reason: wrong password for %q", ip, username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	if err := s.repo.RecordLogin(ctx, user.ID, ip); err != nil {
		// Login proceeds; the stale timestamp is only cosmetic.
		logging.GetGlobalLogger().Warn("Failed to record login for %q: %v", username, err)
	}

	logging.GetGlobalLogger().Info("[AUDIT] LOGIN | User: %s (%s) | IP: %s", user.ID, user.Username, ip)
	return user, token, nil
}

// VerifyToken parses and validates a session token.
func (s *AuthService) VerifyToken(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// SeedAdmin creates or replaces the administrative user. Used by the
// create-admin maintenance command, never by the runtime API.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || len(password) < 8 {
		return nil, &FieldErrors{Missing: []string{"username"}, Format: []string{"password"}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Upsert(ctx, &models.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
