package service

import (
	"context"
	"errors"
	"fmt"

	"leadportaal/internal/forms"
	"leadportaal/internal/models"
	"leadportaal/internal/repository"
)

// QuoteService owns the quote request lifecycle: boundary validation against
// the wizard schema, persistence, and the activity trail.
type QuoteService struct {
	repo       repository.QuoteRepository
	activities *ActivityService
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(repo repository.QuoteRepository, activities *ActivityService) *QuoteService {
	return &QuoteService{repo: repo, activities: activities}
}

// Submit validates and persists a quote request.
func (s *QuoteService) Submit(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if err := validateQuote(quote); err != nil {
		return nil, err
	}

	saved, err := s.repo.Create(ctx, quote)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	s.activities.Log(models.ActivityTypeQuote,
		fmt.Sprintf("Offerte aanvraag van %s (%s)", saved.CompanyName, saved.Email),
		saved.ID, "quotes")
	return saved, nil
}

// Get returns a single quote request.
func (s *QuoteService) Get(ctx context.Context, id string) (*models.Quote, error) {
	quote, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return quote, nil
}

// List returns all quote requests, newest first.
func (s *QuoteService) List(ctx context.Context) ([]*models.Quote, error) {
	quotes, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return quotes, nil
}

// UpdateStatus moves a quote request through its triage states.
func (s *QuoteService) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	if !models.ValidQuoteStatus(status) {
		return nil, &FieldErrors{Format: []string{"status"}}
	}

	quote, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	s.activities.Log(models.ActivityTypeQuote,
		fmt.Sprintf("Opdracht %s is nu %s", quote.CompanyName, quote.Status),
		quote.ID, "quotes")
	return quote, nil
}

// Delete removes a quote request.
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(err)
	}
	return nil
}

// validateQuote re-runs the wizard's step validation over the full payload.
func validateQuote(quote *models.Quote) error {
	schema := forms.QuoteSchema()
	a := forms.NewAnswers(schema)
	a.SetText("websiteType", quote.WebsiteType)
	a.SetTags("features", quote.Features)
	a.SetText("budget", quote.Budget)
	a.SetText("timeline", quote.Timeline)
	a.SetText("companyName", quote.CompanyName)
	a.SetText("contactPerson", quote.ContactPerson)
	a.SetText("email", quote.Email)
	a.SetText("phone", quote.Phone)
	a.SetText("additionalInfo", quote.AdditionalInfo)

	if result := forms.ValidateAll(schema, a); !result.Ok() {
		return &FieldErrors{Missing: result.MissingFields, Format: result.FormatErrors}
	}
	return nil
}

// translateRepositoryError maps store errors onto the service taxonomy.
func translateRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrDuplicate
	case errors.Is(err, repository.ErrMissingTable):
		return fmt.Errorf("%w: %v", ErrBackendMisconfigured, err)
	default:
		return err
	}
}
