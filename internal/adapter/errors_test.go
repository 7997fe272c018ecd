package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestStatusKind(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessableEntity},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnexpectedStatus},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, statusKind(tt.code))
		})
	}
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{StatusCode: http.StatusNotFound, Body: `{"detail":"Item no encontrado"}`}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, `not found (http 404): {"detail":"Item no encontrado"}`, err.Error())
	assert.True(t, err.IsClientError())
	assert.False(t, err.IsServerError())

	empty := &HTTPError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "bad gateway (http 502): Bad Gateway", empty.Error())
	assert.True(t, empty.IsServerError())
}

func TestStatusCode(t *testing.T) {
	wrapped := fmt.Errorf("list items request: %w", &HTTPError{StatusCode: 500})

	assert.Equal(t, 500, StatusCode(wrapped))
	assert.Zero(t, StatusCode(errors.New("plain")))
	assert.Zero(t, StatusCode(nil))
}

func TestMapTransportError(t *testing.T) {
	tokenErr := fmt.Errorf("%w: %w", ErrTokenUnavailable, errors.New("locked"))
	canceledTokenErr := fmt.Errorf("%w: %w", ErrTokenUnavailable, context.Canceled)
	deadlineTokenErr := fmt.Errorf("%w: %w", ErrTokenUnavailable, context.DeadlineExceeded)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "token store", err: tokenErr, want: ErrTokenUnavailable},
		{name: "token store canceled", err: canceledTokenErr, want: ErrCanceled},
		{name: "token store deadline", err: deadlineTokenErr, want: ErrTimeout},
		{name: "canceled", err: fmt.Errorf("get: %w", context.Canceled), want: ErrCanceled},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: ErrTimeout},
		{name: "net timeout", err: fmt.Errorf("dial: %w", timeoutErr{}), want: ErrTimeout},
		{name: "refused", err: errors.New("connection refused"), want: ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapTransportError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
