package memory

import (
	"context"
	"sync"

	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/storage"
)

// Storage is an in-memory name cache living as long as the process
type Storage struct {
	mu    sync.RWMutex
	names model.Names
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		names: make(model.Names),
	}
}

// Ensure Storage implements the interface
var _ storage.NameCache = (*Storage)(nil)

func (s *Storage) GetNames(ctx context.Context, ids []model.PlayerID) (model.Names, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(model.Names, len(ids))
	for _, id := range ids {
		if r, ok := s.names[id]; ok {
			found[id] = r
		}
	}
	return found, nil
}

func (s *Storage) SaveNames(ctx context.Context, names model.Names) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range names {
		if _, exists := s.names[id]; !exists {
			s.names[id] = r
		}
	}
	return nil
}

func (s *Storage) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names), nil
}
