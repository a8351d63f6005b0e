package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError carries every violated rule from a single submission,
// so clients see all problems at once instead of fixing them one by one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NewValidationError(violations []string) error {
	return &ValidationError{Violations: violations}
}
