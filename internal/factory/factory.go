package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/skytracker/skytracker/internal/config"
	"github.com/skytracker/skytracker/internal/dependencies/clock"
	"github.com/skytracker/skytracker/internal/services/auctions"
	"github.com/skytracker/skytracker/internal/services/enrich"
	"github.com/skytracker/skytracker/internal/services/listing"
	"github.com/skytracker/skytracker/internal/services/tracker"
	"github.com/skytracker/skytracker/internal/services/watchlist"
	"github.com/skytracker/skytracker/internal/storage"
	"github.com/skytracker/skytracker/internal/storage/memory"
	redisstorage "github.com/skytracker/skytracker/internal/storage/redis"
	"github.com/skytracker/skytracker/internal/upstream"
)

// Cache type constants
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	NameCache storage.NameCache

	// External dependencies
	Clock    clock.Clock
	Mojang   *upstream.MojangClient
	SkyCrypt *upstream.SkyCryptClient
	Hypixel  *upstream.HypixelClient
	PlayerDB *upstream.PlayerDBClient

	// Services
	Pipeline  *enrich.Pipeline
	Renderer  *listing.Renderer
	Tracker   *tracker.Service
	Auctions  *auctions.Service
	Watchlist *watchlist.Store
}

// UpstreamConfig holds the base URLs of the external APIs.
// Empty URLs use the public endpoints.
type UpstreamConfig struct {
	MojangURL   string
	SkyCryptURL string
	HypixelURL  string
	PlayerDBURL string
	Timeout     time.Duration
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// CacheType selects the name cache backend ("memory" or "redis")
	// If empty, defaults to "memory"
	CacheType string
	// RedisConfig holds Redis connection settings (required if CacheType is "redis")
	RedisConfig *redisstorage.Config
	// Upstream configures the external API clients
	Upstream UpstreamConfig
	// Enrich configures name resolution fan-out (optional)
	Enrich enrich.Config
	// PageSize is the default number of listings per page (optional)
	PageSize int
}

// FromEnv converts loaded environment configuration into a factory Config
func FromEnv(env *config.Config, logger *slog.Logger) Config {
	cfg := Config{
		Logger:    logger,
		CacheType: env.Cache.Type,
		Upstream: UpstreamConfig{
			MojangURL:   env.Upstream.MojangURL,
			SkyCryptURL: env.Upstream.SkyCryptURL,
			HypixelURL:  env.Upstream.HypixelURL,
			PlayerDBURL: env.Upstream.PlayerDBURL,
			Timeout:     env.Upstream.Timeout,
		},
		Enrich: enrich.Config{
			Concurrency: env.Upstream.ResolveConcurrency,
			Timeout:     env.Upstream.Timeout,
		},
		PageSize: env.View.PageSize,
	}

	if env.Cache.Type == CacheTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = env.Cache.RedisURL
		if env.Cache.PoolSize > 0 {
			redisCfg.PoolSize = env.Cache.PoolSize
		}
		if env.Cache.MinIdleConns > 0 {
			redisCfg.MinIdleConns = env.Cache.MinIdleConns
		}
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create the name cache based on type
	var cache storage.NameCache
	cacheType := cfg.CacheType
	if cacheType == "" {
		cacheType = CacheTypeMemory
	}

	switch cacheType {
	case CacheTypeMemory:
		cache = memory.New()
	case CacheTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CacheType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		cache = redisStore
	default:
		return nil, errors.New("invalid CacheType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(cache, clock.New(), cfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cache storage.NameCache, clk clock.Clock, cfg Config, logger *slog.Logger) *App {
	clientCfg := func(url string) upstream.Config {
		return upstream.Config{BaseURL: url, Timeout: cfg.Upstream.Timeout, Logger: logger}
	}

	// Create upstream clients
	mojang := upstream.NewMojangClient(clientCfg(cfg.Upstream.MojangURL))
	skycrypt := upstream.NewSkyCryptClient(clientCfg(cfg.Upstream.SkyCryptURL))
	hypixel := upstream.NewHypixelClient(clientCfg(cfg.Upstream.HypixelURL))
	playerdb := upstream.NewPlayerDBClient(clientCfg(cfg.Upstream.PlayerDBURL))

	// Create services
	pipeline := enrich.New(playerdb, cache, cfg.Enrich, logger)
	renderer := listing.NewRenderer(cfg.PageSize)
	trackerService := tracker.New(mojang, skycrypt, logger)
	auctionService := auctions.New(hypixel, pipeline, renderer, logger)
	watchlistStore := watchlist.New(clk)

	return &App{
		NameCache: cache,
		Clock:     clk,
		Mojang:    mojang,
		SkyCrypt:  skycrypt,
		Hypixel:   hypixel,
		PlayerDB:  playerdb,
		Pipeline:  pipeline,
		Renderer:  renderer,
		Tracker:   trackerService,
		Auctions:  auctionService,
		Watchlist: watchlistStore,
	}
}

// Close releases resources held by the name cache
func (a *App) Close() error {
	if c, ok := a.NameCache.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
