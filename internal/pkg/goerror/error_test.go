package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "server", err: NewServer(cause), want: http.StatusInternalServerError},
		{name: "unavailable", err: NewUnavailable(cause), want: http.StatusServiceUnavailable},
		{name: "not found", err: NewBusiness("missing", CodeNotFound), want: http.StatusNotFound},
		{name: "invalid input", err: NewInvalidInput(cause), want: http.StatusUnprocessableEntity},
		{name: "invalid format", err: NewInvalidFormat(), want: http.StatusBadRequest},
		{name: "odd kv", err: NewInvalidInput(nil, "user_id"), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.True(t, errors.As(tt.err, &gerr))
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestCauseIsReachable(t *testing.T) {
	sentinel := errors.New("sentinel")

	assert.ErrorIs(t, NewBusiness("not there", CodeNotFound, sentinel), sentinel)
	assert.ErrorIs(t, NewUnavailable(sentinel), sentinel)
	assert.ErrorIs(t, NewServer(sentinel), sentinel)
}

func TestNewInvalidInputFields(t *testing.T) {
	err := NewInvalidInput(nil, "user_id", "user_id is a required field")

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, TypeValidation, gerr.Type())
	assert.Equal(t, map[string]string{"user_id": "user_id is a required field"}, gerr.Fields())
	assert.Equal(t, "Validation error", gerr.Error())
}
