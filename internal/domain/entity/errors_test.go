package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "title length",
			field:    "title",
			message:  "title must be between 5 and 50 characters",
			expected: "validation error on field 'title': title must be between 5 and 50 characters",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
		{
			name:     "empty message",
			field:    "category",
			message:  "",
			expected: "validation error on field 'category': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_WithErrors(t *testing.T) {
	err := fmt.Errorf("create magazine: %w", &ValidationError{Field: "name", Message: "too short"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidReference))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "name", validationErr.Field)
	assert.Equal(t, "too short", validationErr.Message)
}

func TestReferenceError_WithErrors(t *testing.T) {
	err := fmt.Errorf("publish: %w", &ReferenceError{Field: "magazine", Message: "magazine must be a Magazine"})

	assert.Equal(t, "publish: reference error on field 'magazine': magazine must be a Magazine", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidReference))
	assert.False(t, errors.Is(err, ErrValidationFailed))

	var refErr *ReferenceError
	assert.True(t, errors.As(err, &refErr))
	assert.Equal(t, "magazine", refErr.Field)
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	assert.Equal(t, "validation failed", ErrValidationFailed.Error())
	assert.Equal(t, "invalid entity reference", ErrInvalidReference.Error())
	assert.NotEqual(t, ErrValidationFailed, ErrInvalidReference)
}
