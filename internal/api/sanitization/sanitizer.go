package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeString removes potentially dangerous characters from a string
func SanitizeString(input string) string {
	// Remove HTML tags
	safe := template.HTMLEscapeString(input)

	// Collapse multiple spaces
	safe = multiSpace.ReplaceAllString(safe, " ")

	return strings.TrimSpace(safe)
}

// SanitizeEmail normalizes an email address for storage and lookups
func SanitizeEmail(input string) string {
	email := strings.ToLower(strings.TrimSpace(input))

	// Remove any HTML tags
	return template.HTMLEscapeString(email)
}

// SanitizeMultiline escapes HTML but preserves line breaks, for free-form
// text such as project descriptions
func SanitizeMultiline(input string) string {
	safe := template.HTMLEscapeString(input)

	lines := strings.Split(safe, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
