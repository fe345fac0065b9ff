package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"database", NewDatabaseError("db", nil), http.StatusInternalServerError},
		{"config", NewConfigError("cfg", nil), http.StatusInternalServerError},
		{"auth", NewAuthError("auth", nil), http.StatusUnauthorized},
		{"unauthorized", NewUnauthorizedError("forbidden", nil), http.StatusForbidden},
		{"not found", NewNotFoundError("missing", nil), http.StatusNotFound},
		{"validation", NewValidationError("bad input", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad request", nil), http.StatusBadRequest},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"migration", NewMigrationError("migrate", nil), http.StatusInternalServerError},
		{"conflict", NewConflictError("exists", nil), http.StatusConflict},
		{"unknown", NewAppError(UnknownError, "unknown", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("connection refused")
	err := NewDatabaseError("failed to query", underlying)

	assert.Equal(t, "failed to query: connection refused", err.Error())
	assert.Equal(t, underlying, errors.Unwrap(err))
	assert.True(t, errors.Is(err, underlying))

	bare := NewNotFoundError("missing", nil)
	assert.Equal(t, "missing", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

func TestToResponseHidesUnderlyingError(t *testing.T) {
	t.Parallel()

	err := NewDatabaseError("failed to query", errors.New("password=hunter2 rejected"))
	resp := err.ToResponse()
	assert.Equal(t, "failed to query", resp.Error)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	appErr, ok := FromError(NewConflictError("exists", nil))
	require.True(t, ok)
	assert.Equal(t, ConflictError, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypeCheckers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(NewNotFoundError("x", nil)))
	assert.True(t, IsAuthError(NewAuthError("x", nil)))
	assert.True(t, IsValidationError(NewValidationError("x", nil)))
	assert.True(t, IsBadRequestError(NewBadRequestError("x", nil)))
	assert.True(t, IsConflictError(NewConflictError("x", nil)))

	assert.False(t, IsNotFound(NewConflictError("x", nil)))
	assert.False(t, IsAuthError(errors.New("plain")))

	// Checkers see through wrapping.
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("x", nil))
	assert.True(t, IsNotFound(wrapped))
}
