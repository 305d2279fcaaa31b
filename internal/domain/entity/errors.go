package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrValidationFailed indicates that a name, title or category failed validation
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidReference indicates that an Author or Magazine reference is missing
	// or does not belong to the registry performing the operation
	ErrInvalidReference = errors.New("invalid entity reference")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ReferenceError reports that an entity reference passed to an operation is unusable:
// nil, owned by another Registry, or created before the last Reset.
type ReferenceError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the reference error.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidReference.
func (e *ReferenceError) Unwrap() error {
	return ErrInvalidReference
}
