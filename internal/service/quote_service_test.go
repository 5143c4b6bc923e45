package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"leadportaal/internal/models"
	"leadportaal/internal/repository"
)

// Mock QuoteRepository
type mockQuoteRepository struct {
	repository.QuoteRepository
	createFunc       func(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	updateStatusFunc func(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error)
}

func (m *mockQuoteRepository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, quote)
	}
	quote.ID = "q-1"
	return quote, nil
}

func (m *mockQuoteRepository) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &models.Quote{ID: id, Status: status}, nil
}

// Mock ActivityRepository recording descriptions
type mockActivityRepository struct {
	repository.ActivityRepository
	mu      sync.Mutex
	entries []string
	err     error
}

func (m *mockActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, activity.Description)
	return nil
}

func validQuote() *models.Quote {
	return &models.Quote{
		WebsiteType:   "webshop",
		Features:      []string{"Analytics"},
		Budget:        "< €5000",
		Timeline:      "1-2 maanden",
		CompanyName:   "Acme BV",
		ContactPerson: "Jan de Vries",
		Email:         "info@acme.nl",
		Phone:         "0612345678",
	}
}

func TestQuoteService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Quote)
		repoErr error
		wantErr error
	}{
		{
			name: "valid quote",
		},
		{
			name:    "missing company name",
			mutate:  func(q *models.Quote) { q.CompanyName = "  " },
			wantErr: ErrValidation,
		},
		{
			name:    "malformed email",
			mutate:  func(q *models.Quote) { q.Email = "geen-email" },
			wantErr: ErrValidation,
		},
		{
			name:    "unknown website type",
			mutate:  func(q *models.Quote) { q.WebsiteType = "spaceship" },
			wantErr: ErrValidation,
		},
		{
			name:    "duplicate email",
			repoErr: repository.ErrDuplicateEmail,
			wantErr: ErrDuplicate,
		},
		{
			name:    "missing table",
			repoErr: repository.ErrMissingTable,
			wantErr: ErrBackendMisconfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockQuoteRepository{}
			if tt.repoErr != nil {
				repo.createFunc = func(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
					return nil, tt.repoErr
				}
			}
			svc := NewQuoteService(repo, NewActivityService(&mockActivityRepository{}))

			quote := validQuote()
			if tt.mutate != nil {
				tt.mutate(quote)
			}

			saved, err := svc.Submit(context.Background(), quote)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Submit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Submit() unexpected error: %v", err)
			}
			if saved.ID == "" {
				t.Error("Submit() did not assign an id")
			}
			if saved.Status != models.QuoteStatusNew {
				t.Errorf("Submit() status = %q, want %q", saved.Status, models.QuoteStatusNew)
			}
		})
	}
}

func TestQuoteService_SubmitDefaultsStatus(t *testing.T) {
	repo := &mockQuoteRepository{createFunc: func(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
		if quote.Status == "" {
			quote.Status = models.QuoteStatusNew
		}
		quote.ID = "q-2"
		return quote, nil
	}}
	svc := NewQuoteService(repo, NewActivityService(&mockActivityRepository{}))

	saved, err := svc.Submit(context.Background(), validQuote())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if saved.Status != models.QuoteStatusNew {
		t.Errorf("status = %q, want nieuw", saved.Status)
	}
}

func TestQuoteService_UpdateStatusValidation(t *testing.T) {
	svc := NewQuoteService(&mockQuoteRepository{}, NewActivityService(&mockActivityRepository{}))

	if _, err := svc.UpdateStatus(context.Background(), "q-1", "verzonnen"); !errors.Is(err, ErrValidation) {
		t.Fatalf("UpdateStatus() error = %v, want validation error", err)
	}

	quote, err := svc.UpdateStatus(context.Background(), "q-1", models.QuoteStatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	if quote.Status != models.QuoteStatusInProgress {
		t.Errorf("status = %q, want in_behandeling", quote.Status)
	}
}

func TestQuoteService_ActivityFailureDoesNotBlock(t *testing.T) {
	activityRepo := &mockActivityRepository{err: errors.New("activities table gone")}
	svc := NewQuoteService(&mockQuoteRepository{}, NewActivityService(activityRepo))

	if _, err := svc.Submit(context.Background(), validQuote()); err != nil {
		t.Fatalf("Submit() must succeed even when activity logging fails, got %v", err)
	}
}
