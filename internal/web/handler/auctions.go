package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/skytracker/skytracker/internal/dependencies/clock"
	"github.com/skytracker/skytracker/internal/services/auctions"
	"github.com/skytracker/skytracker/internal/web/middleware"
	"github.com/skytracker/skytracker/internal/web/templates/layout"
	"github.com/skytracker/skytracker/internal/web/templates/pages"
)

// AuctionsHandler handles the auction browser
type AuctionsHandler struct {
	auctions *auctions.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// NewAuctionsHandler creates a new AuctionsHandler
func NewAuctionsHandler(auctions *auctions.Service, clk clock.Clock, logger *slog.Logger) *AuctionsHandler {
	return &AuctionsHandler{
		auctions: auctions,
		clock:    clk,
		logger:   logger,
	}
}

// View renders GET /auctions?search=&page=
func (h *AuctionsHandler) View(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	data := pages.AuctionsData{
		PageData: layout.PageData{
			Title:  "Auctions",
			Flash:  middleware.GetFlash(r.Context()),
			Active: "auctions",
		},
		Search: search,
		Now:    h.clock.Now(),
	}

	result, err := h.auctions.Browse(r.Context(), auctions.Query{Search: search, Page: page})
	if err != nil {
		h.logger.Warn("auction fetch failed", slog.String("error", err.Error()))
		data.Error = "Failed to fetch auction data."
		render(w, r, http.StatusBadGateway, pages.Auctions(data))
		return
	}

	data.Page = result
	render(w, r, http.StatusOK, pages.Auctions(data))
}
