package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 16, cfg.Upstream.ResolveConcurrency)
	assert.Equal(t, 10, cfg.View.PageSize)
	assert.Equal(t, "https://api.mojang.com", cfg.Upstream.MojangURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address())
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 25, cfg.View.PageSize)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
}

func TestLoadRedisRequiresURL(t *testing.T) {
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_URL")
}

func TestLoadUnknownCacheType(t *testing.T) {
	t.Setenv("CACHE_TYPE", "memcached")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsZeroConcurrency(t *testing.T) {
	t.Setenv("RESOLVE_CONCURRENCY", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "RESOLVE_CONCURRENCY")
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for name, want := range cases {
		l := LogConfig{Level: name}
		assert.Equal(t, want, l.SlogLevel(), name)
	}
}
