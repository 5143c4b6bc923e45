package tasks

import (
	"context"
	"time"

	"leadportaal/internal/logging"
	"leadportaal/internal/repository"
)

// DefaultRetentionDays is how long activity feed entries are kept.
const DefaultRetentionDays = 90

// ActivityRetention handles periodic pruning of old activity feed entries
type ActivityRetention struct {
	activities    repository.ActivityRepository
	retentionDays int
}

// NewActivityRetention creates a new activity retention task
func NewActivityRetention(activities repository.ActivityRepository, retentionDays int) *ActivityRetention {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &ActivityRetention{
		activities:    activities,
		retentionDays: retentionDays,
	}
}

// Start begins the retention task in the background
func (t *ActivityRetention) Start() {
	go t.runPeriodically()
}

// runPeriodically runs the pruning task at regular intervals
func (t *ActivityRetention) runPeriodically() {
	// Run immediately on startup
	t.prune()

	// Then run every 12 hours
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		t.prune()
	}
}

// prune performs the actual deletion
func (t *ActivityRetention) prune() {
	logger := logging.GetGlobalLogger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := t.activities.DeleteOlderThan(ctx, t.retentionDays)
	if err != nil {
		logger.Warn("Activity retention pruning failed: %v", err)
		return
	}
	if deleted > 0 {
		logger.Info("Pruned %d activity entries older than %d days", deleted, t.retentionDays)
	}
}
