package response

import (
	"time"

	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/services/listing"
	"github.com/skytracker/skytracker/internal/services/tracker"
)

// Identity is the relay body: a username and its stable identifier
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IdentityFromModel converts a model.PlayerIdentity
func IdentityFromModel(p model.PlayerIdentity) Identity {
	return Identity{
		ID:   string(p.ID),
		Name: p.Name,
	}
}

// Profile is one Skyblock profile of a player
type Profile struct {
	ProfileID string `json:"profile_id"`
	CuteName  string `json:"cute_name"`
	Selected  bool   `json:"selected"`
}

// Player represents a looked up player
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Profiles []Profile `json:"profiles"`
}

// PlayerFromTracker converts a tracker.Player
func PlayerFromTracker(p *tracker.Player) Player {
	profiles := make([]Profile, 0, len(p.Profile.Profiles))
	for _, s := range p.Profile.Profiles {
		profiles = append(profiles, Profile{
			ProfileID: s.ProfileID,
			CuteName:  s.CuteName,
			Selected:  s.Selected,
		})
	}
	return Player{
		ID:       string(p.Identity.ID),
		Name:     p.Identity.Name,
		Profiles: profiles,
	}
}

// Party is a seller, co-owner or bidder on a listing
type Party struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// PartyFromView converts a listing.Party
func PartyFromView(p listing.Party) Party {
	return Party{
		ID:        string(p.ID),
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
	}
}

func partiesFromView(ps []listing.Party) []Party {
	out := make([]Party, 0, len(ps))
	for _, p := range ps {
		out = append(out, PartyFromView(p))
	}
	return out
}

// Auction represents a decorated auction listing
type Auction struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name"`
	Lore           []string  `json:"lore"`
	Extra          string    `json:"extra"`
	Category       string    `json:"category"`
	Tier           string    `json:"tier"`
	TierColor      string    `json:"tier_color"`
	StartingBid    int64     `json:"starting_bid"`
	HighestBid     int64     `json:"highest_bid"`
	StartingPrice  string    `json:"starting_price"`
	HighestPrice   string    `json:"highest_price"`
	Seller         Party     `json:"seller"`
	CoOwners       []Party   `json:"co_owners"`
	ClaimedBidders []Party   `json:"claimed_bidders"`
	Claimed        bool      `json:"claimed"`
	BIN            bool      `json:"bin"`
	ProfileID      string    `json:"profile_id"`
	ImageURL       string    `json:"image_url"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
}

// AuctionFromView converts a listing.Item. Lore is flattened to plain text.
func AuctionFromView(item listing.Item) Auction {
	l := item.Listing
	lore := make([]string, 0, len(item.Lore))
	for _, line := range item.Lore {
		lore = append(lore, line.Text())
	}
	return Auction{
		ID:             l.ID,
		ItemID:         l.ItemID,
		ItemName:       l.ItemName,
		Lore:           lore,
		Extra:          l.Extra,
		Category:       l.Category,
		Tier:           string(l.Tier),
		TierColor:      item.TierColor,
		StartingBid:    l.StartingBid,
		HighestBid:     l.HighestBid,
		StartingPrice:  item.StartingBid,
		HighestPrice:   item.HighestBid,
		Seller:         PartyFromView(item.Seller),
		CoOwners:       partiesFromView(item.CoOwners),
		ClaimedBidders: partiesFromView(item.ClaimedBidders),
		Claimed:        l.Claimed,
		BIN:            l.BIN,
		ProfileID:      l.ProfileID,
		ImageURL:       item.ImageURL,
		Start:          l.Start,
		End:            l.End,
	}
}

// AuctionPage is one page of auction listings
type AuctionPage struct {
	Items        []Auction `json:"items"`
	Search       string    `json:"search"`
	Page         int       `json:"page"`
	PageSize     int       `json:"page_size"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

// AuctionPageFromView converts a listing.Page
func AuctionPageFromView(p listing.Page) AuctionPage {
	items := make([]Auction, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, AuctionFromView(item))
	}
	return AuctionPage{
		Items:        items,
		Search:       p.Search,
		Page:         p.Page,
		PageSize:     p.PageSize,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

// NamesResponse maps stable identifiers to their display data
type NamesResponse struct {
	Names map[string]model.ResolvedIdentity `json:"names"`
}

// NamesFromModel converts model.Names
func NamesFromModel(n model.Names) NamesResponse {
	out := make(map[string]model.ResolvedIdentity, len(n))
	for id, r := range n {
		out[string(id)] = r
	}
	return NamesResponse{Names: out}
}

// Health is the health check body
type Health struct {
	Status string `json:"status"`
	Cached int    `json:"cached_names"`
}
