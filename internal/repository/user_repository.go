package repository

import (
	"context"
	"time"

	"leadportaal/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// userRepository implements UserRepository on Postgres
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	var saved models.User
	err := r.db.GetContext(ctx, &saved, `
		INSERT INTO users (id, username, password_hash, role, created_at, last_login, last_login_ip)
		VALUES ($1, $2, $3, $4, $5, $5, '')
		ON CONFLICT (username)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
		RETURNING *`,
		user.ID, user.Username, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &saved, nil
}

func (r *userRepository) RecordLogin(ctx context.Context, id string, ip string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET last_login = $1, last_login_ip = $2 WHERE id = $3`,
		time.Now().UTC(), ip, id)
	return translateError(err)
}
