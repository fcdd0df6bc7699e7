package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorFormat(t *testing.T) {
	err := NewValidationError("contract", "design", "owners", ErrInvalidReference)
	assert.Equal(t, "contract 'design': field 'owners': invalid configuration reference", err.Error())

	noField := NewValidationError("persona", "qa_engineer", "", ErrMissingRequiredField)
	assert.Equal(t, "persona 'qa_engineer': missing required field", noField.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := NewValidationError("policy", "implementation", "test_coverage", ErrInvalidValue)
	assert.ErrorIs(t, err, ErrInvalidValue)

	var ve *ValidationError
	assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &ve)
	assert.Equal(t, "policy", ve.Component)
}

func TestLoadErrorUnwrap(t *testing.T) {
	err := NewLoadError("maestro.yaml", ErrInvalidYAML)
	assert.ErrorIs(t, err, ErrInvalidYAML)
	assert.Contains(t, err.Error(), "maestro.yaml")
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"load error", NewLoadError("maestro.yaml", errors.New("boom")), true},
		{"validation error", NewValidationError("engine", "engine", "worker_count", ErrInvalidValue), true},
		{"wrapped sentinel", fmt.Errorf("outer: %w", ErrValidationFailed), true},
		{"config not found", fmt.Errorf("load: %w", ErrConfigNotFound), true},
		{"invalid yaml", fmt.Errorf("parse: %w", ErrInvalidYAML), true},
		{"unrelated error", errors.New("database down"), false},
		{"nil-ish plain error", errors.New(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfigError(tt.err))
		})
	}
}
