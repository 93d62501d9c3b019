package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/skytracker/skytracker/internal/model"
)

// IdentityResolver maps a username to its stable identifier
type IdentityResolver interface {
	ResolveID(ctx context.Context, username string) (model.PlayerIdentity, error)
}

// ProfileFetcher fetches the aggregated statistics for an identifier
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, id model.PlayerID) (*model.PlayerProfile, error)
}

// Player is a tracked player with their fetched profile
type Player struct {
	Identity model.PlayerIdentity
	Profile  *model.PlayerProfile
}

// Service implements the player lookups behind the watchlist
type Service struct {
	identities IdentityResolver
	profiles   ProfileFetcher
	logger     *slog.Logger
}

// New creates a new tracker Service
func New(identities IdentityResolver, profiles ProfileFetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{
		identities: identities,
		profiles:   profiles,
		logger:     logger,
	}
}

// ResolveID resolves username to its stable identifier
func (s *Service) ResolveID(ctx context.Context, username string) (model.PlayerIdentity, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.PlayerIdentity{}, model.ErrUsernameRequired
	}

	identity, err := s.identities.ResolveID(ctx, username)
	if err != nil {
		return model.PlayerIdentity{}, fmt.Errorf("resolve %q: %w", username, err)
	}
	return identity, nil
}

// Lookup resolves username and fetches its profile. This is the check a
// name must pass before it is added to a watchlist.
func (s *Service) Lookup(ctx context.Context, username string) (*Player, error) {
	identity, err := s.ResolveID(ctx, username)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FetchProfile(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile for %s: %w", identity.ID, err)
	}

	s.logger.Info("player looked up",
		slog.String("username", identity.Name),
		slog.String("player_id", string(identity.ID)),
		slog.Int("profiles", len(profile.Profiles)),
	)

	return &Player{Identity: identity, Profile: profile}, nil
}
