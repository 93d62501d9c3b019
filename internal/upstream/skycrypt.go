package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/skytracker/skytracker/internal/model"
)

// SkyCryptClient fetches aggregated player statistics
type SkyCryptClient struct {
	base
}

// NewSkyCryptClient creates a SkyCrypt client
func NewSkyCryptClient(cfg Config) *SkyCryptClient {
	return &SkyCryptClient{base: newBase("skycrypt", DefaultSkyCryptURL, cfg)}
}

// skycryptDocument picks out the few fields we summarise; the rest of the
// document is kept raw.
type skycryptDocument struct {
	Profiles map[string]struct {
		ProfileID string `json:"profile_id"`
		CuteName  string `json:"cute_name"`
		Current   bool   `json:"current"`
		Selected  bool   `json:"selected"`
	} `json:"profiles"`
}

// FetchProfile fetches the profile document for id
func (c *SkyCryptClient) FetchProfile(ctx context.Context, id model.PlayerID) (*model.PlayerProfile, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/v2/profile/{uuid}", map[string]string{"uuid": string(id)}, &raw); err != nil {
		return nil, err
	}

	var doc skycryptDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("skycrypt: %w: %w", model.ErrMalformedResponse, err)
	}

	profile := &model.PlayerProfile{
		PlayerID: id,
		Raw:      raw,
	}
	for key, p := range doc.Profiles {
		profileID := p.ProfileID
		if profileID == "" {
			profileID = key
		}
		profile.Profiles = append(profile.Profiles, model.ProfileSummary{
			ProfileID: profileID,
			CuteName:  p.CuteName,
			Selected:  p.Current || p.Selected,
		})
	}
	sort.Slice(profile.Profiles, func(i, j int) bool {
		return profile.Profiles[i].CuteName < profile.Profiles[j].CuteName
	})

	return profile, nil
}
