package forms

import (
	"regexp"
	"strings"
)

// emailRegex is deliberately permissive: local@domain.tld with no whitespace.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// StepResult is the outcome of validating a single step.
type StepResult struct {
	MissingFields []string
	FormatErrors  []string
}

// Ok reports whether the step passed validation.
func (r StepResult) Ok() bool {
	return len(r.MissingFields) == 0 && len(r.FormatErrors) == 0
}

// ValidateAll runs every step's validation and merges the results. The server
// side uses this to re-check a submitted payload against the same rules the
// wizard applied step by step.
func ValidateAll(schema *Schema, a *Answers) StepResult {
	var merged StepResult
	for _, step := range schema.Steps {
		result := ValidateStep(step, a)
		merged.MissingFields = append(merged.MissingFields, result.MissingFields...)
		merged.FormatErrors = append(merged.FormatErrors, result.FormatErrors...)
	}
	return merged
}

// ValidateStep checks the step's fields against the answers. It is a pure
// function: no side effects, same inputs always give the same result.
func ValidateStep(step Step, a *Answers) StepResult {
	var result StepResult

	for _, f := range step.Fields {
		switch f.Type {
		case FieldText, FieldChoice:
			value := strings.TrimSpace(a.Text(f.Name))
			if value == "" {
				if f.Required {
					result.MissingFields = append(result.MissingFields, f.Name)
				}
				continue
			}
			if f.Email && !emailRegex.MatchString(value) {
				result.FormatErrors = append(result.FormatErrors, f.Name)
			}
			if f.URL && !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
				result.FormatErrors = append(result.FormatErrors, f.Name)
			}
			if f.Type == FieldChoice && len(f.Options) > 0 && !f.HasOption(value) {
				result.FormatErrors = append(result.FormatErrors, f.Name)
			}
		case FieldTags:
			tags := a.Tags(f.Name)
			if f.Required && len(tags) == 0 {
				result.MissingFields = append(result.MissingFields, f.Name)
				continue
			}
			for _, tag := range tags {
				if len(f.Options) > 0 && !f.HasOption(tag) {
					result.FormatErrors = append(result.FormatErrors, f.Name)
					break
				}
			}
		case FieldFlag:
			// A flag is never missing; false is a valid answer.
		}
	}

	return result
}
