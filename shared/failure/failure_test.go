package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("invalid status"), code: http.StatusBadRequest, message: "invalid status"},
		{name: "bad request from error", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest, message: "validation failed"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "forbidden", err: failure.Forbidden("account disabled"), code: http.StatusForbidden, message: "account disabled"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "method not allowed", err: failure.MethodNotAllowed("Method not allowed"), code: http.StatusMethodNotAllowed, message: "Method not allowed"},
		{name: "conflict", err: failure.Conflict("email already registered"), code: http.StatusConflict, message: "email already registered"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, message: "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
	assert.Equal(t, http.StatusForbidden, failure.ResourceRestrictedError.Code)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.NotFound("missing"), want: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("service: %w", failure.Conflict("dup")), want: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIsFailure(t *testing.T) {
	assert.True(t, failure.IsFailure(fmt.Errorf("wrap: %w", failure.BadRequestFromString("x"))))
	assert.False(t, failure.IsFailure(errors.New("x")))
}
