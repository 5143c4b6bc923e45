package service

import (
	"context"

	"leadportaal/internal/models"
	"leadportaal/internal/repository"
)

// DashboardStats aggregates the counters for the dashboard overview.
type DashboardStats struct {
	TotalQuotes      int
	NewQuotes        int
	TotalFreelancers int
}

// DashboardService aggregates data across the lead tables for the dashboard.
type DashboardService struct {
	quotes      repository.QuoteRepository
	freelancers repository.FreelancerRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(quotes repository.QuoteRepository, freelancers repository.FreelancerRepository) *DashboardService {
	return &DashboardService{
		quotes:      quotes,
		freelancers: freelancers,
	}
}

// Stats returns the counters shown on the dashboard overview.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalQuotes, err := s.quotes.Count(ctx)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	newQuotes, err := s.quotes.CountByStatus(ctx, models.QuoteStatusNew)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	totalFreelancers, err := s.freelancers.Count(ctx)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	return &DashboardStats{
		TotalQuotes:      totalQuotes,
		NewQuotes:        newQuotes,
		TotalFreelancers: totalFreelancers,
	}, nil
}
