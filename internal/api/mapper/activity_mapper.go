package mapper

import (
	"leadportaal/internal/api/dto/v1/dashboard"
	"leadportaal/internal/models"
)

// ActivityToActivityResponse converts a domain Activity model to an ActivityResponse DTO
func ActivityToActivityResponse(a *models.Activity) *dashboard.ActivityResponse {
	if a == nil {
		return nil
	}

	resp := &dashboard.ActivityResponse{
		ID:          a.ID,
		Type:        string(a.Type),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
	if a.RelatedID.Valid {
		resp.RelatedID = a.RelatedID.String
	}
	if a.RelatedType.Valid {
		resp.RelatedType = a.RelatedType.String
	}
	return resp
}

// ActivitiesToActivityResponses converts a slice of domain Activity models to DTOs
func ActivitiesToActivityResponses(activities []*models.Activity) []dashboard.ActivityResponse {
	result := make([]dashboard.ActivityResponse, len(activities))
	for i := range activities {
		result[i] = *ActivityToActivityResponse(activities[i])
	}
	return result
}
