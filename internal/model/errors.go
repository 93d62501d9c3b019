package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors used across the application
var (
	// Transport errors
	ErrNetwork           = errors.New("network error")
	ErrUpstream          = errors.New("upstream error")
	ErrNotFound          = errors.New("not found")
	ErrMalformedResponse = errors.New("malformed response")

	// Input errors
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidPlayerID  = errors.New("invalid player identifier")
)

// UpstreamError is returned when a dependency answers with a non-2xx status.
// It unwraps to ErrNotFound for 404/204 and to ErrUpstream otherwise.
type UpstreamError struct {
	Service string
	Status  int
}

// Error implements error
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.Status)
}

// Unwrap lets errors.Is match the taxonomy sentinels
func (e *UpstreamError) Unwrap() error {
	if e.IsNotFound() {
		return ErrNotFound
	}
	return ErrUpstream
}

// IsNotFound reports whether the upstream said the resource does not exist
func (e *UpstreamError) IsNotFound() bool {
	return e.Status == http.StatusNotFound || e.Status == http.StatusNoContent
}
