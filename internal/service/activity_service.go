package service

import (
	"context"
	"database/sql"
	"time"

	"leadportaal/internal/logging"
	"leadportaal/internal/models"
	"leadportaal/internal/repository"
)

// ActivityService appends entries to the dashboard activity feed.
// Writes are fire-and-forget: a failed activity write is logged and never
// blocks or fails the operation that triggered it.
type ActivityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Log records an activity entry in the background.
func (s *ActivityService) Log(activityType models.ActivityType, description, relatedID, relatedType string) {
	activity := &models.Activity{
		Description: description,
		Type:        activityType,
	}
	if relatedID != "" {
		activity.RelatedID = sql.NullString{String: relatedID, Valid: true}
		activity.RelatedType = sql.NullString{String: relatedType, Valid: true}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.Create(ctx, activity); err != nil {
			logging.GetGlobalLogger().Warn("Failed to log activity %q: %v", description, err)
		}
	}()
}

// Recent returns the latest feed entries for the dashboard.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	return s.repo.Recent(ctx, limit)
}
