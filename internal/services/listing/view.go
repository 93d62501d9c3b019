// Package listing turns an auction snapshot into a filtered, paginated page
// of display-ready items.
package listing

import (
	"strings"

	"github.com/skytracker/skytracker/internal/model"
)

// DefaultPageSize is the number of listings per page
const DefaultPageSize = 10

// Party is a player shown on a listing
type Party struct {
	ID        model.PlayerID
	Name      string
	AvatarURL string
}

// Item is a listing decorated for display
type Item struct {
	Listing        model.AuctionListing
	Seller         Party
	CoOwners       []Party
	ClaimedBidders []Party
	TierColor      string
	StartingBid    string
	HighestBid     string
	ImageURL       string
	Lore           []LoreLine
}

// Page is one page of the filtered listings
type Page struct {
	Items        []Item
	Search       string
	Page         int
	PageSize     int
	TotalPages   int
	TotalResults int
}

// HasPrevious reports whether there is a page before this one
func (p Page) HasPrevious() bool {
	return p.Page > 1
}

// HasNext reports whether there is a page after this one
func (p Page) HasNext() bool {
	return p.Page < p.TotalPages
}

// Renderer builds pages using the injected presentation tables
type Renderer struct {
	Colors   RarityColors
	Palette  Palette
	PageSize int
}

// NewRenderer creates a Renderer with the default tables
func NewRenderer(pageSize int) *Renderer {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Renderer{
		Colors:   DefaultRarityColors,
		Palette:  DefaultPalette,
		PageSize: pageSize,
	}
}

// View filters listings by search term, slices out the requested page and
// decorates each item with names from names.
// pageSize <= 0 uses the renderer's page size.
func (r *Renderer) View(listings []model.AuctionListing, names model.Names, search string, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = r.PageSize
	}

	filtered := Filter(listings, search)
	start, end, page, totalPages := Paginate(len(filtered), page, pageSize)

	items := make([]Item, 0, end-start)
	for _, l := range filtered[start:end] {
		items = append(items, r.decorate(l, names))
	}

	return Page{
		Items:        items,
		Search:       search,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalResults: len(filtered),
	}
}

// Filter keeps listings whose item name contains search, ignoring case.
// The term is matched as given, surrounding spaces included. An empty search
// matches everything.
func Filter(listings []model.AuctionListing, search string) []model.AuctionListing {
	needle := strings.ToLower(search)
	if needle == "" {
		return listings
	}

	var out []model.AuctionListing
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.ItemName), needle) {
			out = append(out, l)
		}
	}
	return out
}

// Paginate computes slice bounds for page over total items.
// page is clamped into [1, totalPages]; with no items it is 1 and
// totalPages is 0.
func Paginate(total, page, pageSize int) (start, end, clamped, totalPages int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages = (total + pageSize - 1) / pageSize

	clamped = page
	if clamped > totalPages {
		clamped = totalPages
	}
	if clamped < 1 {
		clamped = 1
	}

	start = (clamped - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end, clamped, totalPages
}

func (r *Renderer) decorate(l model.AuctionListing, names model.Names) Item {
	return Item{
		Listing:        l,
		Seller:         party(l.SellerID, names),
		CoOwners:       parties(l.CoOwnerIDs, names),
		ClaimedBidders: parties(l.ClaimedBidderIDs, names),
		TierColor:      r.Colors.ColorFor(l.Tier),
		StartingBid:    FormatCoins(l.StartingBid),
		HighestBid:     FormatCoins(l.HighestBid),
		ImageURL:       ItemImageURL(l.ItemID),
		Lore:           ParseLore(l.ItemLore, r.Palette),
	}
}

func party(id model.PlayerID, names model.Names) Party {
	return Party{
		ID:        id,
		Name:      names.DisplayName(id),
		AvatarURL: AvatarURL(id, names[id]),
	}
}

func parties(ids []model.PlayerID, names model.Names) []Party {
	out := make([]Party, 0, len(ids))
	for _, id := range ids {
		out = append(out, party(id, names))
	}
	return out
}
