package upstream

import (
	"context"
	"fmt"
	"strings"

	"github.com/skytracker/skytracker/internal/model"
)

// MojangClient resolves player names to stable identifiers
type MojangClient struct {
	base
}

// NewMojangClient creates a Mojang client
func NewMojangClient(cfg Config) *MojangClient {
	return &MojangClient{base: newBase("mojang", DefaultMojangURL, cfg)}
}

type mojangProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolveID looks up the stable identifier for username
func (c *MojangClient) ResolveID(ctx context.Context, username string) (model.PlayerIdentity, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.PlayerIdentity{}, model.ErrUsernameRequired
	}

	var body mojangProfile
	err := c.getJSON(ctx, "/users/profiles/minecraft/{name}", map[string]string{"name": username}, &body)
	if err != nil {
		return model.PlayerIdentity{}, err
	}

	id, err := model.ParsePlayerID(body.ID)
	if err != nil {
		return model.PlayerIdentity{}, fmt.Errorf("mojang: %w: id %q", model.ErrMalformedResponse, body.ID)
	}

	name := body.Name
	if name == "" {
		name = username
	}
	return model.PlayerIdentity{Name: name, ID: id}, nil
}
