package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakePlayer is a player known to the fake upstream
type FakePlayer struct {
	ID     string
	Name   string
	Avatar string
}

// FakeUpstream serves the Mojang, SkyCrypt, Hypixel and PlayerDB endpoints
// from in-memory data. All four services share one httptest server, so the
// same URL is used as base URL for every client.
type FakeUpstream struct {
	Server *httptest.Server

	mu             sync.Mutex
	players        map[string]FakePlayer // keyed by lowercase name
	byID           map[string]FakePlayer
	auctions       []map[string]any
	failIDs        map[string]bool
	auctionsStatus int
	mojangStatus   int
	lookups        map[string]int
}

// NewFakeUpstream starts a fake upstream server that is closed with the test
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{
		players: make(map[string]FakePlayer),
		byID:    make(map[string]FakePlayer),
		failIDs: make(map[string]bool),
		lookups: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/profiles/minecraft/{name}", f.handleMojang)
	mux.HandleFunc("GET /api/v2/profile/{uuid}", f.handleSkyCrypt)
	mux.HandleFunc("GET /v2/skyblock/auctions", f.handleAuctions)
	mux.HandleFunc("GET /api/player/minecraft/{uuid}", f.handlePlayerDB)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL of the fake server
func (f *FakeUpstream) URL() string {
	return f.Server.URL
}

// AddPlayer registers a player for name and identifier lookups
func (f *FakeUpstream) AddPlayer(p FakePlayer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.players[strings.ToLower(p.Name)] = p
	f.byID[p.ID] = p
}

// FailLookup makes PlayerDB fail for id
func (f *FakeUpstream) FailLookup(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs[id] = true
}

// SetAuctions replaces the auction snapshot
func (f *FakeUpstream) SetAuctions(auctions []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auctions = auctions
}

// SetAuctionsStatus makes the auctions endpoint answer with status
func (f *FakeUpstream) SetAuctionsStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auctionsStatus = status
}

// SetMojangStatus makes the username endpoint answer every request with
// status and an empty body
func (f *FakeUpstream) SetMojangStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mojangStatus = status
}

// Lookups returns how many PlayerDB requests were made for id
func (f *FakeUpstream) Lookups(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups[id]
}

// TotalLookups returns the number of PlayerDB requests made
func (f *FakeUpstream) TotalLookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.lookups {
		total += n
	}
	return total
}

func (f *FakeUpstream) handleMojang(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	p, ok := f.players[strings.ToLower(r.PathValue("name"))]
	status := f.mojangStatus
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"path":         r.URL.Path,
			"errorMessage": "Couldn't find any profile with name " + r.PathValue("name"),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": p.ID, "name": p.Name})
}

func (f *FakeUpstream) handleSkyCrypt(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	p, ok := f.byID[r.PathValue("uuid")]
	f.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profiles": map[string]any{
			"p1-" + p.ID: map[string]any{
				"profile_id": "p1-" + p.ID,
				"cute_name":  "Apple",
				"current":    true,
			},
			"p2-" + p.ID: map[string]any{
				"profile_id": "p2-" + p.ID,
				"cute_name":  "Banana",
				"current":    false,
			},
		},
	})
}

func (f *FakeUpstream) handleAuctions(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	status := f.auctionsStatus
	auctions := f.auctions
	f.mu.Unlock()

	if status != 0 && status != http.StatusOK {
		writeJSON(w, status, map[string]any{"success": false, "cause": "fake failure"})
		return
	}
	if auctions == nil {
		auctions = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"page":          0,
		"totalPages":    1,
		"totalAuctions": len(auctions),
		"auctions":      auctions,
	})
}

func (f *FakeUpstream) handlePlayerDB(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("uuid")

	f.mu.Lock()
	f.lookups[id]++
	fail := f.failIDs[id]
	p, ok := f.byID[id]
	f.mu.Unlock()

	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"code": "api.error", "success": false})
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"code": "minecraft.invalid_username", "success": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":    "player.found",
		"success": true,
		"data": map[string]any{
			"player": map[string]any{
				"username": p.Name,
				"id":       p.ID,
				"avatar":   p.Avatar,
			},
		},
	})
}

// Auction builds a Hypixel-shaped auction entry
func Auction(id, itemName, tier, seller string, coop ...string) map[string]any {
	if coop == nil {
		coop = []string{}
	}
	return map[string]any{
		"uuid":               id,
		"item_uuid":          "item-" + id,
		"auctioneer":         seller,
		"profile_id":         "profile-" + seller,
		"coop":               coop,
		"start":              int64(1704110400000),
		"end":                int64(1704196800000),
		"item_name":          itemName,
		"item_lore":          "§7A fine item\n§6§lLEGENDARY",
		"extra":              itemName + " extra",
		"category":           "weapon",
		"tier":               tier,
		"starting_bid":       int64(1500),
		"highest_bid_amount": int64(2500000),
		"claimed":            false,
		"claimed_bidders":    []string{},
		"bin":                true,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
