package model

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// PlayerID is the stable identifier of a Minecraft account (dashless UUID)
type PlayerID string

// ParsePlayerID validates a UUID in dashed or dashless form and normalises
// it to the lowercase dashless form used by Mojang and Hypixel.
func ParsePlayerID(s string) (PlayerID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidPlayerID
	}
	return PlayerID(strings.ReplaceAll(id.String(), "-", "")), nil
}

// PlayerIdentity pairs a display name with its stable identifier
type PlayerIdentity struct {
	Name string
	ID   PlayerID
}

// PlayerProfile is the aggregated statistics document for a player.
// The document is opaque; only a lenient summary is extracted from it.
type PlayerProfile struct {
	PlayerID PlayerID
	Profiles []ProfileSummary
	Raw      json.RawMessage
}

// ProfileSummary is the handful of fields shown for each Skyblock profile
type ProfileSummary struct {
	ProfileID string
	CuteName  string
	Selected  bool
}

// ResolvedIdentity is the display data for a stable identifier
type ResolvedIdentity struct {
	Username  string `json:"username"`
	AvatarRef string `json:"avatar"`
}

// FallbackIdentity is used when an identifier cannot be resolved: the raw
// identifier becomes the display name and there is no avatar.
func FallbackIdentity(id PlayerID) ResolvedIdentity {
	return ResolvedIdentity{Username: string(id)}
}

// Names maps stable identifiers to their resolved display data
type Names map[PlayerID]ResolvedIdentity

// DisplayName returns the resolved username for id, falling back to the
// identifier itself.
func (n Names) DisplayName(id PlayerID) string {
	if r, ok := n[id]; ok && r.Username != "" {
		return r.Username
	}
	return string(id)
}

// Merge returns a new Names holding the union of n and other.
// Entries already in n are never overwritten.
func (n Names) Merge(other Names) Names {
	merged := make(Names, len(n)+len(other))
	for id, r := range other {
		merged[id] = r
	}
	for id, r := range n {
		merged[id] = r
	}
	return merged
}
