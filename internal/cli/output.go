package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/skytracker/skytracker/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printHealth(v)
	case response.Identity:
		o.printIdentity(v)
	case response.Player:
		o.printPlayer(v)
	case response.AuctionPage:
		o.printAuctionPage(v)
	case response.NamesResponse:
		o.printNames(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Cached names: %d\n", h.Cached)
}

func (o *Output) printIdentity(i response.Identity) {
	fmt.Fprintf(o.w, "%s %s\n", i.Name, i.ID)
}

func (o *Output) printPlayer(p response.Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(o.w, "Profiles (%d):\n", len(p.Profiles))
	for _, s := range p.Profiles {
		selected := ""
		if s.Selected {
			selected = " [selected]"
		}
		fmt.Fprintf(o.w, "  - %s (%s)%s\n", s.CuteName, s.ProfileID, selected)
	}
}

func (o *Output) printAuctionPage(p response.AuctionPage) {
	if p.TotalResults == 0 {
		fmt.Fprintln(o.w, "No auctions found")
		return
	}

	fmt.Fprintf(o.w, "Page %d of %d (%s results)\n", p.Page, p.TotalPages, humanize.Comma(int64(p.TotalResults)))
	for _, a := range p.Items {
		fmt.Fprintln(o.w)
		o.printAuction(a)
	}
}

func (o *Output) printAuction(a response.Auction) {
	kind := "Auction"
	if a.BIN {
		kind = "BIN"
	}
	fmt.Fprintf(o.w, "%s [%s] %s\n", a.ItemName, a.Tier, kind)
	fmt.Fprintf(o.w, "  Seller: %s\n", partyNames([]response.Party{a.Seller}))
	if len(a.CoOwners) > 0 {
		fmt.Fprintf(o.w, "  Co-op: %s\n", partyNames(a.CoOwners))
	}
	fmt.Fprintf(o.w, "  Starting bid: %s coins\n", humanize.Comma(a.StartingBid))
	if a.HighestBid > 0 {
		fmt.Fprintf(o.w, "  Highest bid: %s coins\n", humanize.Comma(a.HighestBid))
	}
	fmt.Fprintf(o.w, "  Ends: %s (%s)\n", a.End.UTC().Format("2006-01-02 15:04 MST"), humanize.Time(a.End))
	if a.Claimed {
		fmt.Fprintf(o.w, "  Claimed by: %s\n", partyNames(a.ClaimedBidders))
	}
}

func (o *Output) printNames(n response.NamesResponse) {
	ids := make([]string, 0, len(n.Names))
	for id := range n.Names {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintf(o.w, "%s %s\n", id, n.Names[id].Username)
	}
}

func partyNames(parties []response.Party) string {
	names := make([]string, 0, len(parties))
	for _, p := range parties {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
