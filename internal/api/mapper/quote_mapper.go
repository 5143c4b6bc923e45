package mapper

import (
	"leadportaal/internal/api/dto/v1/quote"
	"leadportaal/internal/api/sanitization"
	"leadportaal/internal/models"
)

// QuoteToQuoteResponse converts a domain Quote model to a QuoteResponse DTO
func QuoteToQuoteResponse(q *models.Quote) *quote.QuoteResponse {
	if q == nil {
		return nil
	}

	return &quote.QuoteResponse{
		ID:             q.ID,
		WebsiteType:    q.WebsiteType,
		Features:       append([]string{}, q.Features...),
		Budget:         q.Budget,
		Timeline:       q.Timeline,
		CompanyName:    q.CompanyName,
		ContactPerson:  q.ContactPerson,
		Email:          q.Email,
		Phone:          q.Phone,
		AdditionalInfo: q.AdditionalInfo,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

// QuotesToQuoteResponses converts a slice of domain Quote models to QuoteResponse DTOs
func QuotesToQuoteResponses(quotes []*models.Quote) []quote.QuoteResponse {
	result := make([]quote.QuoteResponse, len(quotes))
	for i := range quotes {
		result[i] = *QuoteToQuoteResponse(quotes[i])
	}
	return result
}

// SubmitRequestToQuote converts a SubmitRequest DTO to a domain Quote model.
// Free-form text fields are sanitized; enum fields are validated elsewhere.
func SubmitRequestToQuote(req *quote.SubmitRequest) *models.Quote {
	return &models.Quote{
		WebsiteType:    req.WebsiteType,
		Features:       req.Features,
		Budget:         req.Budget,
		Timeline:       req.Timeline,
		CompanyName:    sanitization.SanitizeString(req.CompanyName),
		ContactPerson:  sanitization.SanitizeString(req.ContactPerson),
		Email:          sanitization.SanitizeEmail(req.Email),
		Phone:          sanitization.SanitizeString(req.Phone),
		AdditionalInfo: sanitization.SanitizeMultiline(req.AdditionalInfo),
	}
}
