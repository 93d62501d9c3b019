package storage

import (
	"context"

	"github.com/skytracker/skytracker/internal/model"
)

// NameCache maps stable identifiers to resolved display data.
// Entries are only ever added: SaveNames never overwrites an identifier that
// is already cached and nothing is evicted.
type NameCache interface {
	// GetNames returns the cached entries for ids; unknown ids are omitted
	GetNames(ctx context.Context, ids []model.PlayerID) (model.Names, error)
	// SaveNames adds entries for identifiers not yet cached
	SaveNames(ctx context.Context, names model.Names) error
	// Len returns the number of cached identifiers
	Len(ctx context.Context) (int, error)
}
