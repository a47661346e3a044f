package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackfleet/hackfleet/pkg/services"
)

func TestServiceErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "validation error",
			err:    services.NewValidationError("participant_name", "required"),
			status: http.StatusBadRequest,
		},
		{
			name:   "wrapped validation error",
			err:    fmt.Errorf("creating stack: %w", services.NewValidationError("content", "required")),
			status: http.StatusBadRequest,
		},
		{
			name:   "not found",
			err:    services.ErrNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "invalid transition",
			err:    fmt.Errorf("%w: stack s1 cannot move to running", services.ErrInvalidTransition),
			status: http.StatusConflict,
		},
		{
			name:   "already exists",
			err:    services.ErrAlreadyExists,
			status: http.StatusConflict,
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := serviceErrorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
		})
	}

	t.Run("internal errors never leak details", func(t *testing.T) {
		_, message := serviceErrorStatus(errors.New("pq: secret connection string"))
		assert.Equal(t, "internal server error", message)
	})
}
