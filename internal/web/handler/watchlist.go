package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/skytracker/skytracker/internal/services/listing"
	"github.com/skytracker/skytracker/internal/services/tracker"
	"github.com/skytracker/skytracker/internal/services/watchlist"
	"github.com/skytracker/skytracker/internal/web/middleware"
	"github.com/skytracker/skytracker/internal/web/templates/layout"
	"github.com/skytracker/skytracker/internal/web/templates/pages"
)

// headSize is the pixel size of watchlist avatars
const headSize = 32

// WatchlistHandler handles the watchlist page and its actions
type WatchlistHandler struct {
	store   *watchlist.Store
	tracker *tracker.Service
	logger  *slog.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(store *watchlist.Store, tracker *tracker.Service, logger *slog.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		store:   store,
		tracker: tracker,
		logger:  logger,
	}
}

// Home renders the watchlist
func (h *WatchlistHandler) Home(w http.ResponseWriter, r *http.Request) {
	names := h.store.Load(r)

	players := make([]pages.WatchedPlayer, 0, len(names))
	for _, name := range names {
		players = append(players, pages.WatchedPlayer{
			Name:    name,
			HeadURL: listing.HeadURL(name, headSize),
		})
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title:  "Watchlist",
			Flash:  middleware.GetFlash(r.Context()),
			Active: "watchlist",
		},
		Players: players,
	}

	render(w, r, http.StatusOK, pages.Home(data))
}

// Add handles POST /players. The name is only added once the player has
// been resolved and their profile fetched.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))

	player, err := h.tracker.Lookup(r.Context(), username)
	if err != nil {
		h.logger.Info("watchlist add rejected",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		middleware.SetFlash(w, middleware.FlashError, playerMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.store.Add(w, r, username)
	middleware.SetFlash(w, middleware.FlashSuccess, "Now tracking "+player.Identity.Name+".")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Remove handles POST /players/remove
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	if username != "" {
		h.store.Remove(w, r, username)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
