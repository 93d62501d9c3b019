package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skytracker/skytracker/internal/api/handler"
	"github.com/skytracker/skytracker/internal/api/middleware"
	"github.com/skytracker/skytracker/internal/services/auctions"
	"github.com/skytracker/skytracker/internal/services/enrich"
	"github.com/skytracker/skytracker/internal/services/tracker"
	"github.com/skytracker/skytracker/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Tracker   *tracker.Service
	Auctions  *auctions.Service
	Pipeline  *enrich.Pipeline
	NameCache storage.NameCache
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	relayHandler := handler.NewRelayHandler(cfg.Tracker)
	playerHandler := handler.NewPlayerHandler(cfg.Tracker)
	auctionHandler := handler.NewAuctionHandler(cfg.Auctions)
	nameHandler := handler.NewNameHandler(cfg.Pipeline)
	healthHandler := handler.NewHealthHandler(cfg.NameCache)

	// Common middleware for everything under /api
	base := r.PathPrefix("/api").Subrouter()
	base.Use(middleware.Recovery(cfg.Logger))
	base.Use(middleware.Logging(cfg.Logger))

	// Username relay used by the watchlist page
	base.HandleFunc("/uuid", relayHandler.UUID).Methods(http.MethodGet)

	// Versioned JSON API
	api := base.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/auctions", auctionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/names", nameHandler.Get).Methods(http.MethodGet)

	return r
}
