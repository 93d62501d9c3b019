package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytracker/skytracker/internal/model"
)

func makeListings(n int) []model.AuctionListing {
	listings := make([]model.AuctionListing, n)
	for i := range listings {
		listings[i] = model.AuctionListing{
			ID:       fmt.Sprintf("l%d", i),
			ItemName: fmt.Sprintf("Item %d", i),
			SellerID: "seller",
			Tier:     model.TierRare,
		}
	}
	return listings
}

func TestViewPaginates25Into3Pages(t *testing.T) {
	r := NewRenderer(10)
	listings := makeListings(25)

	first := r.View(listings, nil, "", 1, 10)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 25, first.TotalResults)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, "l0", first.Items[0].Listing.ID)

	last := r.View(listings, nil, "", 3, 10)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, "l20", last.Items[0].Listing.ID)
	assert.True(t, last.HasPrevious())
	assert.False(t, last.HasNext())
}

func TestViewClampsPage(t *testing.T) {
	r := NewRenderer(10)
	listings := makeListings(25)

	high := r.View(listings, nil, "", 99, 0)
	assert.Equal(t, 3, high.Page)
	assert.Len(t, high.Items, 5)

	low := r.View(listings, nil, "", -4, 0)
	assert.Equal(t, 1, low.Page)
	assert.Len(t, low.Items, 10)
	assert.False(t, low.HasPrevious())
}

func TestViewEmpty(t *testing.T) {
	r := NewRenderer(0)

	page := r.View(nil, nil, "", 1, 0)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext())
	assert.Equal(t, DefaultPageSize, page.PageSize)
}

func TestViewItemsNeverExceedPageSize(t *testing.T) {
	r := NewRenderer(10)
	for n := 0; n < 35; n++ {
		for p := 0; p < 6; p++ {
			page := r.View(makeListings(n), nil, "", p, 7)
			assert.LessOrEqual(t, len(page.Items), 7)
			assert.GreaterOrEqual(t, page.TotalPages, 0)
		}
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	listings := []model.AuctionListing{
		{ID: "1", ItemName: "Diamond Sword"},
		{ID: "2", ItemName: "Golden Apple"},
		{ID: "3", ItemName: "SWORD of the Void"},
	}

	got := Filter(listings, "sword")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Len(t, Filter(listings, ""), 3)
	assert.Empty(t, Filter(listings, "bow"))
}

func TestFilterMatchesSearchAsGiven(t *testing.T) {
	listings := []model.AuctionListing{
		{ID: "1", ItemName: "Diamond Sword"},
		{ID: "2", ItemName: "Hyperion"},
	}

	spaced := Filter(listings, " ")
	require.Len(t, spaced, 1)
	assert.Equal(t, "1", spaced[0].ID)

	assert.Empty(t, Filter(listings, "sword "))

	padded := Filter(listings, " sword")
	require.Len(t, padded, 1)
	assert.Equal(t, "1", padded[0].ID)
}

func TestViewDecoratesNames(t *testing.T) {
	r := NewRenderer(10)
	listings := []model.AuctionListing{{
		ID:               "1",
		ItemID:           "abc",
		ItemName:         "Hyperion",
		SellerID:         "a",
		CoOwnerIDs:       []model.PlayerID{"b", "c"},
		ClaimedBidderIDs: []model.PlayerID{"b"},
		Tier:             model.TierLegendary,
		StartingBid:      1500,
		HighestBid:       2_500_000,
		ItemLore:         "§7Damage\n§6Great",
	}}
	names := model.Names{
		"a": {Username: "Alice", AvatarRef: "https://example.com/alice.png"},
		"b": {Username: "Bob"},
	}

	page := r.View(listings, names, "", 1, 0)
	require.Len(t, page.Items, 1)
	item := page.Items[0]

	assert.Equal(t, "Alice", item.Seller.Name)
	assert.Equal(t, "https://example.com/alice.png", item.Seller.AvatarURL)
	require.Len(t, item.CoOwners, 2)
	assert.Equal(t, "Bob", item.CoOwners[0].Name)
	assert.Equal(t, "https://minotar.net/helm/b", item.CoOwners[0].AvatarURL)
	assert.Equal(t, "c", item.CoOwners[1].Name)
	assert.Equal(t, "Bob", item.ClaimedBidders[0].Name)
	assert.Equal(t, "text-yellow-500", item.TierColor)
	assert.Equal(t, "1.5k", item.StartingBid)
	assert.Equal(t, "2.5m", item.HighestBid)
	assert.Equal(t, "https://static.hypixel.net/skyblock/items/abc.png", item.ImageURL)
	require.Len(t, item.Lore, 2)
	assert.Equal(t, "Damage", item.Lore[0].Text())
}

func TestPaginate(t *testing.T) {
	start, end, page, total := Paginate(25, 2, 10)
	assert.Equal(t, []int{10, 20, 2, 3}, []int{start, end, page, total})

	start, end, page, total = Paginate(0, 3, 10)
	assert.Equal(t, []int{0, 0, 1, 0}, []int{start, end, page, total})
}
