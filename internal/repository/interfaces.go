package repository

import (
	"context"

	"leadportaal/internal/models"
)

// QuoteRepository defines the interface for quote-related database operations
type QuoteRepository interface {
	// Create persists a new quote request
	Create(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	// Get returns a quote by ID
	Get(ctx context.Context, id string) (*models.Quote, error)
	// List returns all quotes, newest first
	List(ctx context.Context) ([]*models.Quote, error)
	// UpdateStatus changes the status tag of a quote
	UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error)
	// Delete removes a quote by ID
	Delete(ctx context.Context, id string) error
	// Count returns the total number of quotes
	Count(ctx context.Context) (int, error)
	// CountByStatus returns the number of quotes with the given status tag
	CountByStatus(ctx context.Context, status models.QuoteStatus) (int, error)
}

// FreelancerRepository defines the interface for freelancer-related database operations
type FreelancerRepository interface {
	// Create persists a new freelancer application
	Create(ctx context.Context, freelancer *models.Freelancer) (*models.Freelancer, error)
	// Get returns a freelancer by ID
	Get(ctx context.Context, id string) (*models.Freelancer, error)
	// List returns all freelancers, newest first
	List(ctx context.Context) ([]*models.Freelancer, error)
	// UpdateStatus changes the status tag of a freelancer
	UpdateStatus(ctx context.Context, id string, status models.FreelancerStatus) (*models.Freelancer, error)
	// Delete removes a freelancer by ID
	Delete(ctx context.Context, id string) error
	// Count returns the total number of freelancers
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// GetByUsername returns a user by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Upsert creates the user or replaces its password hash and role
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	// RecordLogin updates the user's last login timestamp and IP
	RecordLogin(ctx context.Context, id string, ip string) error
}

// ActivityRepository defines the interface for the activity feed
type ActivityRepository interface {
	// Create appends an activity entry
	Create(ctx context.Context, activity *models.Activity) error
	// Recent returns the latest entries, newest first
	Recent(ctx context.Context, limit int) ([]*models.Activity, error)
	// DeleteOlderThan prunes entries older than the given number of days
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}
