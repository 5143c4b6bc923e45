package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadportaal/internal/models"
	"leadportaal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock UserRepository
type mockUserRepository struct {
	repository.UserRepository
	users map[string]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*models.User)}
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = "u-" + user.Username
	}
	m.users[user.Username] = user
	return user, nil
}

func (m *mockUserRepository) RecordLogin(ctx context.Context, id string, ip string) error {
	return nil
}

func seededAuthService(t *testing.T) (*AuthService, *mockUserRepository) {
	t.Helper()
	repo := newMockUserRepository()
	svc := NewAuthService(repo, "test-secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("sterk-wachtwoord"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["admin"] = &models.User{
		ID:           "u-admin",
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	return svc, repo
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := seededAuthService(t)

	user, token, err := svc.Login(context.Background(), "admin", "sterk-wachtwoord", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-admin", claims.Subject)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := seededAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "sterk-wachtwoord"},
		{"wrong password", "admin", "fout"},
		{"blank username", "  ", "sterk-wachtwoord"},
		{"blank password", "admin", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.username, tt.password, "127.0.0.1")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_VerifyTokenRejectsTampering(t *testing.T) {
	svc, _ := seededAuthService(t)
	other := NewAuthService(newMockUserRepository(), "other-secret", time.Hour)

	_, token, err := svc.Login(context.Background(), "admin", "sterk-wachtwoord", "127.0.0.1")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.VerifyToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.VerifyToken("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewAuthService(repo, "test-secret", -time.Minute)

	hash, err := bcrypt.GenerateFromPassword([]byte("sterk-wachtwoord"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["admin"] = &models.User{ID: "u-admin", Username: "admin", PasswordHash: string(hash), Role: models.RoleAdmin}

	_, token, err := svc.Login(context.Background(), "admin", "sterk-wachtwoord", "127.0.0.1")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SeedAdmin(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewAuthService(repo, "test-secret", time.Hour)

	user, err := svc.SeedAdmin(context.Background(), "beheer", "lang-genoeg-wachtwoord")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("lang-genoeg-wachtwoord")))

	// Password policy: too short is rejected before hashing.
	_, err = svc.SeedAdmin(context.Background(), "beheer", "kort")
	assert.True(t, errors.Is(err, ErrValidation))
}
