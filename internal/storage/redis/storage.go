package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/storage"
)

// Storage is a Redis-backed name cache. All entries live in a single hash
// without expiry so that several server instances share resolutions.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.NameCache = (*Storage)(nil)

func (s *Storage) GetNames(ctx context.Context, ids []model.PlayerID) (model.Names, error) {
	found := make(model.Names, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	fields := make([]string, len(ids))
	for i, id := range ids {
		fields[i] = string(id)
	}

	values, err := s.client.HMGet(ctx, namesKey(), fields...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // field missing
		}
		var r model.ResolvedIdentity
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("decode cached name for %s: %w", ids[i], err)
		}
		found[ids[i]] = r
	}
	return found, nil
}

func (s *Storage) SaveNames(ctx context.Context, names model.Names) error {
	if len(names) == 0 {
		return nil
	}

	// HSETNX keeps the first resolution of an identifier
	pipe := s.client.Pipeline()
	for id, r := range names {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		pipe.HSetNX(ctx, namesKey(), string(id), data)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) Len(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, namesKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
