package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/skytracker/skytracker/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUsernameRequired    = "USERNAME_REQUIRED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the status code WriteError would use for err
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Upstream statuses are passed through; "no content" means not found
	var ue *model.UpstreamError
	if errors.As(err, &ue) {
		if ue.IsNotFound() {
			return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
		}
		status := ue.Status
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		return &httpError{status, APIError{CodeUpstreamError, fmt.Sprintf("Failed to fetch from %s", ue.Service)}}
	}

	switch {
	case errors.Is(err, model.ErrUsernameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeUsernameRequired, "Username is required"}}
	case errors.Is(err, model.ErrInvalidPlayerID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid player identifier"}}
	case errors.Is(err, model.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNetwork):
		return &httpError{http.StatusInternalServerError, APIError{CodeUpstreamUnreachable, "Upstream service unreachable"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
