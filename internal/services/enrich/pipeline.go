package enrich

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/storage"
)

// Resolver looks up display data for a single identifier
type Resolver interface {
	LookupPlayer(ctx context.Context, id model.PlayerID) (model.ResolvedIdentity, error)
}

// Config holds configuration for the pipeline
type Config struct {
	// Concurrency caps the number of lookups in flight
	Concurrency int
	// Timeout bounds each lookup so a hung request cannot stall a batch
	Timeout time.Duration
}

// DefaultConfig returns default pipeline configuration
func DefaultConfig() Config {
	return Config{
		Concurrency: 16,
		Timeout:     10 * time.Second,
	}
}

// Result is the outcome of resolving one identifier
type Result struct {
	ID       model.PlayerID
	Identity model.ResolvedIdentity
	Err      error
}

// Settle reduces a Result to display data. Failures degrade to the
// identifier-as-name fallback.
func Settle(r Result) model.ResolvedIdentity {
	if r.Err != nil || r.Identity.Username == "" {
		return model.FallbackIdentity(r.ID)
	}
	return r.Identity
}

// CollectIDs returns the distinct identifiers referenced by listings: every
// seller, co-owner and claimed bidder, in first-seen order.
func CollectIDs(listings []model.AuctionListing) []model.PlayerID {
	seen := make(map[model.PlayerID]struct{})
	var ids []model.PlayerID

	add := func(id model.PlayerID) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, l := range listings {
		add(l.SellerID)
		for _, id := range l.CoOwnerIDs {
			add(id)
		}
		for _, id := range l.ClaimedBidderIDs {
			add(id)
		}
	}
	return ids
}

// Missing returns the identifiers in ids that have no entry in names
func Missing(ids []model.PlayerID, names model.Names) []model.PlayerID {
	var missing []model.PlayerID
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Pipeline decorates auction listings with resolved player names
type Pipeline struct {
	resolver Resolver
	cache    storage.NameCache
	cfg      Config
	logger   *slog.Logger

	inflight singleflight.Group
}

// New creates a new Pipeline
func New(resolver Resolver, cache storage.NameCache, cfg Config, logger *slog.Logger) *Pipeline {
	defaults := DefaultConfig()
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaults.Concurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Pipeline{
		resolver: resolver,
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
	}
}

// Enrich makes sure every identifier referenced by listings has a cache
// entry and returns the names for all of them. Listings are not modified.
func (p *Pipeline) Enrich(ctx context.Context, listings []model.AuctionListing) (model.Names, error) {
	return p.Names(ctx, CollectIDs(listings))
}

// Names returns display data for ids, resolving the ones not yet cached.
// A failed lookup never aborts the batch; it degrades to the fallback and
// the fallback is cached like any other result.
func (p *Pipeline) Names(ctx context.Context, ids []model.PlayerID) (model.Names, error) {
	cached, err := p.cache.GetNames(ctx, ids)
	if err != nil {
		p.logger.Warn("name cache read failed", slog.String("error", err.Error()))
		cached = make(model.Names)
	}

	missing := Missing(ids, cached)
	if len(missing) == 0 {
		return cached, nil
	}

	resolved := make(model.Names, len(missing))
	for _, r := range p.Resolve(ctx, missing) {
		resolved[r.ID] = Settle(r)
	}

	if err := p.cache.SaveNames(ctx, resolved); err != nil {
		p.logger.Warn("name cache write failed", slog.String("error", err.Error()))
	}

	p.logger.Debug("names resolved",
		slog.Int("requested", len(ids)),
		slog.Int("cached", len(cached)),
		slog.Int("resolved", len(resolved)),
	)

	return cached.Merge(resolved), nil
}

// Resolve looks up every identifier in parallel and waits for all of them.
// Results are returned in the order of ids.
func (p *Pipeline) Resolve(ctx context.Context, ids []model.PlayerID) []Result {
	results := make([]Result, len(ids))

	var g errgroup.Group
	g.SetLimit(p.cfg.Concurrency)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = p.resolveOne(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// resolveOne performs a single lookup. Concurrent lookups of the same
// identifier from different requests share one upstream call, so the call
// is bounded by the lookup timeout rather than by the first caller.
func (p *Pipeline) resolveOne(ctx context.Context, id model.PlayerID) Result {
	v, err, _ := p.inflight.Do(string(id), func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.Timeout)
		defer cancel()
		return p.resolver.LookupPlayer(lookupCtx, id)
	})
	if err != nil {
		p.logger.Debug("name lookup failed",
			slog.String("player_id", string(id)),
			slog.String("error", err.Error()),
		)
		return Result{ID: id, Err: err}
	}
	return Result{ID: id, Identity: v.(model.ResolvedIdentity)}
}
