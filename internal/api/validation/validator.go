package validation

import (
	"regexp"

	"leadportaal/internal/forms"
	"leadportaal/internal/models"

	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("username", validateUsername)
	v.RegisterValidation("website_type", oneOf(forms.QuoteWebsiteTypes))
	v.RegisterValidation("quote_budget", oneOf(forms.QuoteBudgets))
	v.RegisterValidation("quote_timeline", oneOf(forms.QuoteTimelines))
	v.RegisterValidation("experience_range", oneOf(forms.ExperienceRanges))
	v.RegisterValidation("availability_hours", oneOf(forms.AvailabilityHours))
	v.RegisterValidation("hourly_rate", oneOf(forms.HourlyRates))
	v.RegisterValidation("quote_status", validateQuoteStatus)
	v.RegisterValidation("freelancer_status", validateFreelancerStatus)
}

// validateUsername checks if the username is valid
func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// oneOf builds a validator that accepts only members of the given option set
func oneOf(options []string) validator.Func {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[o] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

func validateQuoteStatus(fl validator.FieldLevel) bool {
	return models.ValidQuoteStatus(models.QuoteStatus(fl.Field().String()))
}

func validateFreelancerStatus(fl validator.FieldLevel) bool {
	return models.ValidFreelancerStatus(models.FreelancerStatus(fl.Field().String()))
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var errors []ValidationError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errors
}
