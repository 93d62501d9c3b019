package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skytracker/skytracker/internal/services/tracker"
	"github.com/skytracker/skytracker/internal/web/middleware"
	"github.com/skytracker/skytracker/internal/web/templates/layout"
	"github.com/skytracker/skytracker/internal/web/templates/pages"
)

// PlayerHandler handles player profile pages
type PlayerHandler struct {
	tracker *tracker.Service
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(tracker *tracker.Service) *PlayerHandler {
	return &PlayerHandler{
		tracker: tracker,
	}
}

// View renders GET /players/{username}
func (h *PlayerHandler) View(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	data := pages.PlayerData{
		PageData: layout.PageData{
			Title:  username,
			Flash:  middleware.GetFlash(r.Context()),
			Active: "watchlist",
		},
	}

	player, err := h.tracker.Lookup(r.Context(), username)
	if err != nil {
		data.Error = playerMessage(err)
		render(w, r, statusFor(err), pages.Player(data))
		return
	}

	data.Title = player.Identity.Name
	data.Player = player
	render(w, r, http.StatusOK, pages.Player(data))
}
