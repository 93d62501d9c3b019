package pages

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/skytracker/skytracker/internal/services/listing"
	"github.com/skytracker/skytracker/internal/web/templates/layout"
)

// AuctionsData is the data for the auction browser
type AuctionsData struct {
	layout.PageData
	Search string
	Page   listing.Page
	Error  string
	// Now anchors relative end times
	Now time.Time
}

// AuctionsURL builds the auction browser URL for a search and page
func AuctionsURL(search string, page int) string {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/auctions"
	}
	return "/auctions?" + q.Encode()
}

func summary(page listing.Page) string {
	s := humanize.Comma(int64(page.TotalResults)) + " results"
	if page.TotalPages > 0 {
		s += " - page " + strconv.Itoa(page.Page) + " of " + strconv.Itoa(page.TotalPages)
	}
	return s
}

func ending(end, now time.Time) string {
	return end.UTC().Format("2006-01-02 15:04 MST") + " (" + humanize.RelTime(end, now, "ago", "from now") + ")"
}

func joinNames(parties []listing.Party) string {
	names := make([]string, 0, len(parties))
	for _, p := range parties {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
