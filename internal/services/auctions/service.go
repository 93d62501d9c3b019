package auctions

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/services/listing"
)

// ListingSource provides the current auction snapshot
type ListingSource interface {
	FetchAuctions(ctx context.Context) ([]model.AuctionListing, error)
}

// Enricher resolves the names referenced by a snapshot
type Enricher interface {
	Enrich(ctx context.Context, listings []model.AuctionListing) (model.Names, error)
}

// Query selects a page of listings
type Query struct {
	Search   string
	Page     int
	PageSize int
}

// Service fetches, enriches and pages auction listings
type Service struct {
	source   ListingSource
	enricher Enricher
	renderer *listing.Renderer
	logger   *slog.Logger
}

// New creates a new auctions Service
func New(source ListingSource, enricher Enricher, renderer *listing.Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{
		source:   source,
		enricher: enricher,
		renderer: renderer,
		logger:   logger,
	}
}

// Browse fetches a fresh snapshot and returns the requested page.
// A snapshot failure fails the whole page; name failures only degrade.
func (s *Service) Browse(ctx context.Context, q Query) (listing.Page, error) {
	listings, err := s.source.FetchAuctions(ctx)
	if err != nil {
		return listing.Page{}, fmt.Errorf("fetch auctions: %w", err)
	}

	names, err := s.enricher.Enrich(ctx, listings)
	if err != nil {
		return listing.Page{}, fmt.Errorf("enrich auctions: %w", err)
	}

	page := s.renderer.View(listings, names, q.Search, q.Page, q.PageSize)

	s.logger.Debug("auctions browsed",
		slog.Int("listings", len(listings)),
		slog.Int("results", page.TotalResults),
		slog.Int("page", page.Page),
	)
	return page, nil
}
