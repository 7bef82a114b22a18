package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("row missing")
	appErr := NewAppError("NOT_FOUND", "order not found", http.StatusNotFound, cause)

	assert.Equal(t, "order not found: row missing", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		statusCode int
		sentinel   error
	}{
		{"not found", NotFound("order"), "NOT_FOUND", http.StatusNotFound, ErrNotFound},
		{"insufficient stock", InsufficientStock(), "INSUFFICIENT_STOCK", http.StatusConflict, ErrInsufficientStock},
		{"bad request", BadRequest("nope"), "BAD_REQUEST", http.StatusBadRequest, ErrInvalidInput},
		{"validation", ValidationError("nope"), "VALIDATION_ERROR", http.StatusUnprocessableEntity, ErrInvalidInput},
		{"conflict", Conflict("busy"), "CONFLICT", http.StatusConflict, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.statusCode, tt.err.StatusCode)
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetStatusCode(NotFound("product")))
	assert.Equal(t, http.StatusNotFound, GetStatusCode(fmt.Errorf("lookup: %w", ErrNotFound)))
	assert.Equal(t, http.StatusConflict, GetStatusCode(ErrInsufficientStock))
	assert.Equal(t, http.StatusBadRequest, GetStatusCode(ErrInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(errors.New("boom")))
}

func TestToResponse(t *testing.T) {
	resp := NotFound("order").ToResponse()
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "order not found", resp.Error.Message)
}
