package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for service layer
var (
	ErrValidation           = errors.New("validation error")
	ErrDuplicate            = errors.New("email already registered")
	ErrNotFound             = errors.New("not found")
	ErrBackendMisconfigured = errors.New("record store misconfigured")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// FieldErrors carries the per-field outcome of a failed submission
// validation. It matches ErrValidation through errors.Is.
type FieldErrors struct {
	Missing []string
	Format  []string
}

func (e *FieldErrors) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("verplicht: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Format) > 0 {
		parts = append(parts, fmt.Sprintf("ongeldig: %s", strings.Join(e.Format, ", ")))
	}
	return "validation error (" + strings.Join(parts, "; ") + ")"
}

func (e *FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
