// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport-level failures. Each wraps the underlying cause.
var (
	ErrNetwork          = errors.New("network error")
	ErrTimeout          = errors.New("request timed out")
	ErrCanceled         = errors.New("request canceled")
	ErrDecode           = errors.New("malformed response body")
	ErrTokenUnavailable = errors.New("credential token unavailable")
)

// Status-level failures, unwrapped from *HTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// HTTPError is returned when the backend answers with a non-2xx status.
// It unwraps to the sentinel matching StatusCode, so both
// errors.Is(err, ErrUnauthorized) and errors.As(err, &httpErr) work.
type HTTPError struct {
	// StatusCode is the HTTP status the backend answered with.
	StatusCode int
	// Body is the trimmed response body (the backend's "detail" JSON).
	Body string

	kind error
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.Unwrap(), e.StatusCode, body)
}

func (e *HTTPError) Unwrap() error {
	if e.kind == nil {
		return statusKind(e.StatusCode)
	}
	return e.kind
}

// IsClientError reports a 4xx status.
func (e *HTTPError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports a 5xx status.
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// (and does not wrap) an *HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
