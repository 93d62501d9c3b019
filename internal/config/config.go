package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()
}

// Config holds all server configuration loaded from environment variables
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Upstream UpstreamConfig
	View     ViewConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:""`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:""`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// CacheConfig selects the name cache backend
type CacheConfig struct {
	Type         string `envconfig:"CACHE_TYPE" default:"memory"` // memory or redis
	RedisURL     string `envconfig:"REDIS_URL" default:""`
	PoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
}

// UpstreamConfig holds the external API settings
type UpstreamConfig struct {
	MojangURL          string        `envconfig:"MOJANG_URL" default:"https://api.mojang.com"`
	SkyCryptURL        string        `envconfig:"SKYCRYPT_URL" default:"https://sky.shiiyu.moe"`
	HypixelURL         string        `envconfig:"HYPIXEL_URL" default:"https://api.hypixel.net"`
	PlayerDBURL        string        `envconfig:"PLAYERDB_URL" default:"https://playerdb.co"`
	Timeout            time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	ResolveConcurrency int           `envconfig:"RESOLVE_CONCURRENCY" default:"16"`
}

// ViewConfig holds listing presentation settings
type ViewConfig struct {
	PageSize int `envconfig:"PAGE_SIZE" default:"10"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when CACHE_TYPE=redis")
		}
	default:
		return fmt.Errorf("unknown CACHE_TYPE %q", c.Cache.Type)
	}

	if c.Upstream.ResolveConcurrency < 1 {
		return fmt.Errorf("RESOLVE_CONCURRENCY must be at least 1")
	}
	if c.View.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	return nil
}

// Address returns the server address in host:port format
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SlogLevel maps the configured level name to a slog level.
// Unknown names fall back to info.
func (l *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
