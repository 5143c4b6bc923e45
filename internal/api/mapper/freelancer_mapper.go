package mapper

import (
	"strings"

	"leadportaal/internal/api/dto/v1/freelancer"
	"leadportaal/internal/api/sanitization"
	"leadportaal/internal/models"
)

// FreelancerToFreelancerResponse converts a domain Freelancer model to a FreelancerResponse DTO
func FreelancerToFreelancerResponse(f *models.Freelancer) *freelancer.FreelancerResponse {
	if f == nil {
		return nil
	}

	return &freelancer.FreelancerResponse{
		ID:           f.ID,
		Name:         f.Name,
		Email:        f.Email,
		Skills:       append([]string{}, f.Skills...),
		Experience:   f.Experience,
		Availability: f.Availability,
		HourlyRate:   f.Rate,
		Portfolio:    f.Portfolio,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// FreelancersToFreelancerResponses converts a slice of domain Freelancer models to DTOs
func FreelancersToFreelancerResponses(freelancers []*models.Freelancer) []freelancer.FreelancerResponse {
	result := make([]freelancer.FreelancerResponse, len(freelancers))
	for i := range freelancers {
		result[i] = *FreelancerToFreelancerResponse(freelancers[i])
	}
	return result
}

// SubmitRequestToFreelancer converts a SubmitRequest DTO to a domain Freelancer model
func SubmitRequestToFreelancer(req *freelancer.SubmitRequest) *models.Freelancer {
	return &models.Freelancer{
		Name:         sanitization.SanitizeString(req.Name),
		Email:        sanitization.SanitizeEmail(req.Email),
		Skills:       req.Skills,
		Experience:   req.Experience,
		Availability: req.Availability,
		Rate:         req.HourlyRate,
		Portfolio:    strings.TrimSpace(req.Portfolio),
	}
}
