package upstream

import (
	"context"
	"fmt"

	"github.com/skytracker/skytracker/internal/model"
)

const playerFoundCode = "player.found"

// PlayerDBClient maps stable identifiers back to usernames and avatars
type PlayerDBClient struct {
	base
}

// NewPlayerDBClient creates a PlayerDB client
func NewPlayerDBClient(cfg Config) *PlayerDBClient {
	return &PlayerDBClient{base: newBase("playerdb", DefaultPlayerDBURL, cfg)}
}

type playerDBResponse struct {
	Code string `json:"code"`
	Data struct {
		Player *struct {
			Username string `json:"username"`
			Avatar   string `json:"avatar"`
		} `json:"player"`
	} `json:"data"`
}

// LookupPlayer resolves id to a username and avatar reference.
// Any code other than "player.found" counts as not found.
func (c *PlayerDBClient) LookupPlayer(ctx context.Context, id model.PlayerID) (model.ResolvedIdentity, error) {
	var body playerDBResponse
	if err := c.getJSON(ctx, "/api/player/minecraft/{uuid}", map[string]string{"uuid": string(id)}, &body); err != nil {
		return model.ResolvedIdentity{}, err
	}

	if body.Code != playerFoundCode {
		return model.ResolvedIdentity{}, fmt.Errorf("playerdb: %w: code %q", model.ErrNotFound, body.Code)
	}
	if body.Data.Player == nil || body.Data.Player.Username == "" {
		return model.ResolvedIdentity{}, fmt.Errorf("playerdb: %w: missing player", model.ErrMalformedResponse)
	}

	return model.ResolvedIdentity{
		Username:  body.Data.Player.Username,
		AvatarRef: body.Data.Player.Avatar,
	}, nil
}
