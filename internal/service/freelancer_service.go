package service

import (
	"context"
	"fmt"

	"leadportaal/internal/forms"
	"leadportaal/internal/models"
	"leadportaal/internal/repository"
)

// FreelancerService owns the freelancer application lifecycle.
type FreelancerService struct {
	repo       repository.FreelancerRepository
	activities *ActivityService
}

// NewFreelancerService creates a new FreelancerService
func NewFreelancerService(repo repository.FreelancerRepository, activities *ActivityService) *FreelancerService {
	return &FreelancerService{repo: repo, activities: activities}
}

// Submit validates and persists a freelancer application.
func (s *FreelancerService) Submit(ctx context.Context, freelancer *models.Freelancer) (*models.Freelancer, error) {
	if err := validateFreelancer(freelancer); err != nil {
		return nil, err
	}

	saved, err := s.repo.Create(ctx, freelancer)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	s.activities.Log(models.ActivityTypeFreelancer,
		fmt.Sprintf("Freelancer %s heeft zich aangemeld", saved.Name),
		saved.ID, "freelancers")
	return saved, nil
}

// Get returns a single freelancer application.
func (s *FreelancerService) Get(ctx context.Context, id string) (*models.Freelancer, error) {
	freelancer, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return freelancer, nil
}

// List returns all freelancer applications, newest first.
func (s *FreelancerService) List(ctx context.Context) ([]*models.Freelancer, error) {
	freelancers, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return freelancers, nil
}

// UpdateStatus changes a freelancer's availability tag.
func (s *FreelancerService) UpdateStatus(ctx context.Context, id string, status models.FreelancerStatus) (*models.Freelancer, error) {
	if !models.ValidFreelancerStatus(status) {
		return nil, &FieldErrors{Format: []string{"status"}}
	}

	freelancer, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	s.activities.Log(models.ActivityTypeFreelancer,
		fmt.Sprintf("Freelancer %s is nu %s", freelancer.Name, freelancer.Status),
		freelancer.ID, "freelancers")
	return freelancer, nil
}

// Delete removes a freelancer application.
func (s *FreelancerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(err)
	}
	return nil
}

// validateFreelancer re-runs the wizard's step validation over the payload.
func validateFreelancer(freelancer *models.Freelancer) error {
	schema := forms.FreelancerSchema()
	a := forms.NewAnswers(schema)
	a.SetText("name", freelancer.Name)
	a.SetText("email", freelancer.Email)
	a.SetTags("skills", freelancer.Skills)
	a.SetText("experience", freelancer.Experience)
	a.SetText("availability", freelancer.Availability)
	a.SetText("rate", freelancer.Rate)
	a.SetText("portfolio", freelancer.Portfolio)

	if result := forms.ValidateAll(schema, a); !result.Ok() {
		return &FieldErrors{Missing: result.MissingFields, Format: result.FormatErrors}
	}
	return nil
}
