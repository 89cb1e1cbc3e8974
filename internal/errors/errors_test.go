package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{InvalidAccount, http.StatusBadRequest},
		{InvalidInput, http.StatusBadRequest},
		{InvalidAmount, http.StatusBadRequest},
		{AccountNotFound, http.StatusNotFound},
		{DuplicateAccount, http.StatusConflict},
		{InsufficientFunds, http.StatusUnprocessableEntity},
		{StoreUnavailable, http.StatusServiceUnavailable},
		{StoreCorruption, http.StatusInternalServerError},
		{InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, NewAppError(tt.code, "x").HTTPStatus(), "code %s", tt.code)
	}
}

func TestWithDetailsDoesNotMutatePredefined(t *testing.T) {
	detailed := ErrAccountNotFound.WithDetails("row missing")
	assert.Equal(t, "row missing", detailed.Details)
	assert.Empty(t, ErrAccountNotFound.Details)
}
