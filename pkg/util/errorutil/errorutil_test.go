package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unauthenticated", NewUnauthorized("nope"), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", NewForbidden("admin only"), http.StatusForbidden, "FORBIDDEN"},
		{"method", NewMethodNotAllowed(), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"wrapped domain", fmt.Errorf("ctx: %w", NewConflict("dup")), http.StatusConflict, "CONFLICT"},
		{"fiber not found", fiber.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"fiber method", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"raw", errors.New("connection refused"), http.StatusInternalServerError, "UPSTREAM_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			require.NotNil(t, de)
			assert.Equal(t, tt.status, de.HTTPStatus)
			assert.Equal(t, tt.code, de.Code)
		})
	}
}

func TestUpstreamErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	de := ToDomainError(cause)

	assert.Equal(t, "Internal Server Error", de.Message)
	assert.NotContains(t, de.Message, "10.0.0.5")
	assert.ErrorIs(t, de, cause)
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
