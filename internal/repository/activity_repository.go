package repository

import (
	"context"
	"fmt"
	"time"

	"leadportaal/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// activityRepository implements ActivityRepository on Postgres
type activityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new ActivityRepository instance
func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	activity.ID = uuid.New().String()
	activity.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO activities (id, description, type, related_id, related_type, created_at)
		VALUES (:id, :description, :type, :related_id, :related_type, :created_at)`, activity)
	return translateError(err)
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var activities []*models.Activity
	err := r.db.SelectContext(ctx, &activities, `
		SELECT * FROM activities ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, translateError(err)
	}
	return activities, nil
}

func (r *activityRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("retention days must be positive")
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, translateError(err)
	}
	return res.RowsAffected()
}
