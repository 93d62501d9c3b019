package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skytracker/skytracker/internal/dependencies/clock"
	"github.com/skytracker/skytracker/internal/services/auctions"
	"github.com/skytracker/skytracker/internal/services/tracker"
	"github.com/skytracker/skytracker/internal/services/watchlist"
	"github.com/skytracker/skytracker/internal/web/handler"
	"github.com/skytracker/skytracker/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Tracker   *tracker.Service
	Auctions  *auctions.Service
	Watchlist *watchlist.Store
	Clock     clock.Clock
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	// Create handlers
	watchlistHandler := handler.NewWatchlistHandler(cfg.Watchlist, cfg.Tracker, cfg.Logger)
	playerHandler := handler.NewPlayerHandler(cfg.Tracker)
	auctionsHandler := handler.NewAuctionsHandler(cfg.Auctions, clk, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Pages
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.HandleFunc("/", watchlistHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/players", watchlistHandler.Add).Methods(http.MethodPost)
	pages.HandleFunc("/players/remove", watchlistHandler.Remove).Methods(http.MethodPost)
	pages.HandleFunc("/players/{username}", playerHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/auctions", auctionsHandler.View).Methods(http.MethodGet)

	return r
}
