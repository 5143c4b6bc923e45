package service

import (
	"context"
	"errors"
	"testing"

	"leadportaal/internal/models"
	"leadportaal/internal/repository"
)

type countingQuoteRepository struct {
	repository.QuoteRepository
	total    int
	byStatus map[models.QuoteStatus]int
	err      error
}

func (m *countingQuoteRepository) Count(ctx context.Context) (int, error) {
	return m.total, m.err
}

func (m *countingQuoteRepository) CountByStatus(ctx context.Context, status models.QuoteStatus) (int, error) {
	return m.byStatus[status], m.err
}

type countingFreelancerRepository struct {
	repository.FreelancerRepository
	total int
}

func (m *countingFreelancerRepository) Count(ctx context.Context) (int, error) {
	return m.total, nil
}

func TestDashboardService_Stats(t *testing.T) {
	svc := NewDashboardService(
		&countingQuoteRepository{
			total:    7,
			byStatus: map[models.QuoteStatus]int{models.QuoteStatusNew: 3},
		},
		&countingFreelancerRepository{total: 4},
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalQuotes != 7 {
		t.Errorf("TotalQuotes = %d, want 7", stats.TotalQuotes)
	}
	if stats.NewQuotes != 3 {
		t.Errorf("NewQuotes = %d, want 3", stats.NewQuotes)
	}
	if stats.TotalFreelancers != 4 {
		t.Errorf("TotalFreelancers = %d, want 4", stats.TotalFreelancers)
	}
}

func TestDashboardService_StatsMissingTable(t *testing.T) {
	svc := NewDashboardService(
		&countingQuoteRepository{err: repository.ErrMissingTable},
		&countingFreelancerRepository{},
	)

	_, err := svc.Stats(context.Background())
	if !errors.Is(err, ErrBackendMisconfigured) {
		t.Errorf("Stats() error = %v, want ErrBackendMisconfigured", err)
	}
}
