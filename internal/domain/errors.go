package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned when an operation requires a synset
	// identifier that is not present in the loaded thesaurus.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks caller input that cannot be interpreted:
	// an unknown relation type in a filter, an unrecognized
	// part-of-speech label. Absence of a word from the vocabulary is
	// never a validation error; it is an empty result.
	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation error for a specific argument.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains one or more argument-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single argument.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
