package handler

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/skytracker/skytracker/internal/model"
)

// render writes component as an HTML response with status
func render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// statusFor picks the page status for a failed lookup
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrUsernameRequired):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// playerMessage is the user-facing text for a failed player lookup
func playerMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrUsernameRequired):
		return "Username cannot be empty."
	case errors.Is(err, model.ErrNotFound):
		return "Player not found."
	case errors.Is(err, model.ErrNetwork):
		return "Could not reach the player service. Please try again."
	default:
		return "Failed to fetch player data. Please try again."
	}
}
