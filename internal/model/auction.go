package model

import "time"

// Tier is the rarity classification of an item
type Tier string

// Known tiers; anything else is treated as unknown
const (
	TierCommon    Tier = "COMMON"
	TierUncommon  Tier = "UNCOMMON"
	TierRare      Tier = "RARE"
	TierEpic      Tier = "EPIC"
	TierLegendary Tier = "LEGENDARY"
	TierMythic    Tier = "MYTHIC"
)

// Known reports whether t is one of the recognised tiers
func (t Tier) Known() bool {
	switch t {
	case TierCommon, TierUncommon, TierRare, TierEpic, TierLegendary, TierMythic:
		return true
	}
	return false
}

// AuctionListing is one auction house entry. Listings are an immutable
// snapshot; nothing in the application writes them back.
type AuctionListing struct {
	ID               string
	ItemID           string
	ItemName         string
	ItemLore         string
	SellerID         PlayerID
	CoOwnerIDs       []PlayerID
	StartingBid      int64
	HighestBid       int64
	Tier             Tier
	Start            time.Time
	End              time.Time
	Claimed          bool
	ClaimedBidderIDs []PlayerID
	Category         string
	ProfileID        string
	Extra            string
	BIN              bool
}
