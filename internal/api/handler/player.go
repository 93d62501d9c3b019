package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skytracker/skytracker/internal/api/response"
	"github.com/skytracker/skytracker/internal/services/tracker"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	tracker *tracker.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(tracker *tracker.Service) *PlayerHandler {
	return &PlayerHandler{
		tracker: tracker,
	}
}

// Get handles GET /api/v1/players/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	player, err := h.tracker.Lookup(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromTracker(player))
}
