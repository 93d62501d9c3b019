package web_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytracker/skytracker/internal/services/listing"
	"github.com/skytracker/skytracker/internal/testutil"
)

func swords(n int) []map[string]any {
	var out []map[string]any
	for i := 0; i < n; i++ {
		out = append(out, testutil.Auction(fmt.Sprintf("s%02d", i), fmt.Sprintf("Diamond Sword %d", i), "RARE", testutil.AliceID))
	}
	return out
}

func TestAuctionsPageRendersListing(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Hyperion", "LEGENDARY", testutil.AliceID, testutil.BobID, testutil.CarolID),
	})

	rr := ts.get("/auctions")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	card := doc.Find("li.auction")
	require.Equal(t, 1, card.Length())

	assert.True(t, card.Find(".item-name").HasClass("text-yellow-500"))
	assertContainsText(t, doc, "li.auction .item-name", "Hyperion")
	assertContainsText(t, doc, "li.auction .price", "Price: 1.5k coins")
	assertContainsText(t, doc, "li.auction .highest-bid", "Highest Bid: 2.5m coins")
	assertContainsText(t, doc, "li.auction .seller", "Seller: Alice")
	assertContainsText(t, doc, "li.auction .coop", "Coop: Bob, Carol")
	assertContainsText(t, doc, "li.auction .extra", "Hyperion extra")
	assertContainsText(t, doc, "li.auction .ending", "2024-01-02 12:00 UTC")
	assertContainsText(t, doc, "li.auction .ending", "1 day from now")
	assertContainsText(t, doc, "li.auction .profile-id", "profile-"+testutil.AliceID)
	assertContainsText(t, doc, "li.auction .category", "weapon")
	assertContainsText(t, doc, "li.auction .tier", "LEGENDARY")
	assertContainsElement(t, doc, "li.auction .bin")
	assertNotContainsElement(t, doc, "li.auction .claimed")
	assertContainsText(t, doc, "nav a.active", "Auctions")
}

func TestAuctionsPageImages(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Hyperion", "LEGENDARY", testutil.AliceID),
		testutil.Auction("a2", "Bow", "RARE", testutil.BobID),
	})

	doc := parseHTML(ts.get("/auctions").Body)

	items := doc.Find("li.auction")
	src, _ := items.First().Find("img.item-image").Attr("src")
	assert.Equal(t, "https://static.hypixel.net/skyblock/items/item-a1.png", src)
	onerror, _ := items.First().Find("img.item-image").Attr("onerror")
	assert.Contains(t, onerror, listing.PlaceholderImageURL)

	// Resolved avatar when the name service has one, head render otherwise
	avatar, _ := items.Eq(0).Find("img.seller-avatar").Attr("src")
	assert.Equal(t, "https://crafatar.com/avatars/"+testutil.AliceID, avatar)
	avatar, _ = items.Eq(1).Find("img.seller-avatar").Attr("src")
	assert.Equal(t, "https://minotar.net/helm/"+testutil.BobID, avatar)
}

func TestAuctionsPageLore(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Hyperion", "LEGENDARY", testutil.AliceID),
	})

	doc := parseHTML(ts.get("/auctions").Body)

	lines := doc.Find("li.auction .lore .lore-line")
	require.Equal(t, 2, lines.Length())

	style, _ := lines.Eq(0).Find("span").Attr("style")
	assert.Equal(t, "color: #AAAAAA", style)
	assert.Equal(t, "A fine item", lines.Eq(0).Text())

	style, _ = lines.Eq(1).Find("span").Attr("style")
	assert.Equal(t, "color: #FFAA00; font-weight: bold", style)
	assert.Equal(t, "LEGENDARY", lines.Eq(1).Text())
}

func TestAuctionsPageFallbackNames(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.FailLookup(testutil.BobID)
	ts.app.Upstream.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Sword", "COMMON", testutil.GhostID, testutil.BobID),
	})

	doc := parseHTML(ts.get("/auctions").Body)

	assertContainsText(t, doc, "li.auction .seller", "Seller: "+testutil.GhostID)
	assertContainsText(t, doc, "li.auction .coop", "Coop: "+testutil.BobID)
}

func TestAuctionsPageClaimed(t *testing.T) {
	ts := newWebTestServer(t)
	claimed := testutil.Auction("a1", "Sword", "EPIC", testutil.AliceID)
	claimed["claimed"] = true
	claimed["claimed_bidders"] = []string{testutil.BobID, testutil.CarolID}
	ts.app.Upstream.SetAuctions([]map[string]any{claimed})

	doc := parseHTML(ts.get("/auctions").Body)

	assertContainsText(t, doc, "li.auction .claimed", "This auction has been claimed.")
	assertContainsText(t, doc, "li.auction .claimed-by", "Claimed by: Bob, Carol")
}

func TestAuctionsPagination(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions(swords(25))

	// First page: previous disabled
	doc := parseHTML(ts.get("/auctions").Body)
	assert.Equal(t, 10, doc.Find("li.auction").Length())
	assertContainsElement(t, doc, ".pager span.prev.disabled")
	next, ok := doc.Find(".pager a.next").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/auctions?page=2", next)

	// Last page: five items, next disabled
	doc = parseHTML(ts.get("/auctions?page=3").Body)
	assert.Equal(t, 5, doc.Find("li.auction").Length())
	assertContainsElement(t, doc, ".pager span.next.disabled")
	prev, ok := doc.Find(".pager a.prev").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/auctions?page=2", prev)
	assertContainsText(t, doc, ".summary", "page 3 of 3")
}

func TestAuctionsPageOutOfRangeIsClamped(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions(swords(25))

	doc := parseHTML(ts.get("/auctions?page=99").Body)
	assert.Equal(t, 5, doc.Find("li.auction").Length())

	doc = parseHTML(ts.get("/auctions?page=abc").Body)
	assert.Equal(t, 10, doc.Find("li.auction").Length())
}

func TestAuctionsSearch(t *testing.T) {
	ts := newWebTestServer(t)
	auctions := swords(12)
	auctions = append(auctions, testutil.Auction("bow", "Runaan's Bow", "LEGENDARY", testutil.BobID))
	ts.app.Upstream.SetAuctions(auctions)

	doc := parseHTML(ts.get("/auctions?search=SWORD").Body)
	assert.Equal(t, 10, doc.Find("li.auction").Length())
	assertContainsText(t, doc, ".summary", "12 results")

	value, _ := doc.Find("form#search input[name=search]").Attr("value")
	assert.Equal(t, "SWORD", value)

	next, _ := doc.Find(".pager a.next").Attr("href")
	assert.Equal(t, "/auctions?page=2&search=SWORD", next)

	doc = parseHTML(ts.get("/auctions?search=bow").Body)
	names := doc.Find("li.auction .item-name").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Runaan's Bow"}, names)
}

func TestAuctionsNoResults(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions(swords(3))

	doc := parseHTML(ts.get("/auctions?search=pickaxe").Body)
	assertContainsElement(t, doc, ".empty")
	assertContainsElement(t, doc, ".pager span.prev.disabled")
	assertContainsElement(t, doc, ".pager span.next.disabled")
}

func TestAuctionsFetchFailureShowsSingleError(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctionsStatus(http.StatusInternalServerError)

	rr := ts.get("/auctions")
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find(".error").Length())
	assertContainsText(t, doc, ".error", "Failed to fetch auction data.")
	assertNotContainsElement(t, doc, "#auctions")
	assertNotContainsElement(t, doc, ".pager")
}

func TestAuctionsNamesCachedAcrossPages(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.SetAuctions(swords(25))

	ts.get("/auctions")
	ts.get("/auctions?page=2")
	ts.get("/auctions?page=3")

	assert.Equal(t, 1, ts.app.Upstream.Lookups(testutil.AliceID))
}
