package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/skytracker/skytracker/internal/model"
)

// HypixelClient fetches the auction house snapshot
type HypixelClient struct {
	base
}

// NewHypixelClient creates a Hypixel client
func NewHypixelClient(cfg Config) *HypixelClient {
	return &HypixelClient{base: newBase("hypixel", DefaultHypixelURL, cfg)}
}

type auctionsResponse struct {
	Success  *bool         `json:"success"`
	Cause    string        `json:"cause"`
	Auctions []auctionJSON `json:"auctions"`
}

type auctionJSON struct {
	UUID             string   `json:"uuid"`
	ItemUUID         string   `json:"item_uuid"`
	Auctioneer       string   `json:"auctioneer"`
	ProfileID        string   `json:"profile_id"`
	Coop             []string `json:"coop"`
	Start            int64    `json:"start"`
	End              int64    `json:"end"`
	ItemName         string   `json:"item_name"`
	ItemLore         string   `json:"item_lore"`
	Extra            string   `json:"extra"`
	Category         string   `json:"category"`
	Tier             string   `json:"tier"`
	StartingBid      int64    `json:"starting_bid"`
	HighestBidAmount int64    `json:"highest_bid_amount"`
	Claimed          bool     `json:"claimed"`
	ClaimedBidders   []string `json:"claimed_bidders"`
	BIN              bool     `json:"bin"`
}

// FetchAuctions returns the current page of active listings
func (c *HypixelClient) FetchAuctions(ctx context.Context) ([]model.AuctionListing, error) {
	var body auctionsResponse
	if err := c.getJSON(ctx, "/v2/skyblock/auctions", nil, &body); err != nil {
		return nil, err
	}
	if body.Success != nil && !*body.Success {
		return nil, fmt.Errorf("hypixel: %w: %s", model.ErrUpstream, body.Cause)
	}

	listings := make([]model.AuctionListing, 0, len(body.Auctions))
	for _, a := range body.Auctions {
		listings = append(listings, a.toModel())
	}
	return listings, nil
}

func (a auctionJSON) toModel() model.AuctionListing {
	return model.AuctionListing{
		ID:               a.UUID,
		ItemID:           a.ItemUUID,
		ItemName:         a.ItemName,
		ItemLore:         a.ItemLore,
		SellerID:         model.PlayerID(a.Auctioneer),
		CoOwnerIDs:       toPlayerIDs(a.Coop),
		StartingBid:      a.StartingBid,
		HighestBid:       a.HighestBidAmount,
		Tier:             model.Tier(a.Tier),
		Start:            fromMillis(a.Start),
		End:              fromMillis(a.End),
		Claimed:          a.Claimed,
		ClaimedBidderIDs: toPlayerIDs(a.ClaimedBidders),
		Category:         a.Category,
		ProfileID:        a.ProfileID,
		Extra:            a.Extra,
		BIN:              a.BIN,
	}
}

func toPlayerIDs(ids []string) []model.PlayerID {
	out := make([]model.PlayerID, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.PlayerID(id))
	}
	return out
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
