package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeWithEmptyWatchlist(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form#add-player input[name=username]")
	assertContainsElement(t, doc, ".empty")
	assertNotContainsElement(t, doc, "#players")
	assertContainsText(t, doc, "nav a.active", "Watchlist")
}

func TestAddPlayer(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.addPlayer("Alice")

	assert.Equal(t, []string{"Alice"}, playerNames(doc))
	assertContainsText(t, doc, ".flash-success", "Now tracking Alice.")
	assert.True(t, ts.cookies.has("players"))

	head, ok := doc.Find("#players li.player img").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "https://minotar.net/helm/Alice/32", head)
}

func TestAddPlayersPreservesOrder(t *testing.T) {
	ts := newWebTestServer(t)

	ts.addPlayer("Carol")
	ts.addPlayer("Alice")
	doc := ts.addPlayer("Bob")

	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, playerNames(doc))
}

func TestFlashShownOnlyOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Alice")

	doc := parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, ".flash")
	assert.Equal(t, []string{"Alice"}, playerNames(doc))
}

func TestAddEmptyUsernameRejected(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.addPlayer("   ")

	assertContainsText(t, doc, ".flash-error", "Username cannot be empty.")
	assert.False(t, ts.cookies.has("players"))
	assert.Equal(t, 0, ts.app.Upstream.TotalLookups())
}

func TestAddUnknownPlayerRejected(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Alice")

	doc := ts.addPlayer("nobody")

	assertContainsText(t, doc, ".flash-error", "Player not found.")
	assert.Equal(t, []string{"Alice"}, playerNames(doc))
}

func TestAddPlayerWhenUpstreamUnreachable(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Upstream.Server.Close()

	doc := ts.addPlayer("Alice")

	assertContainsText(t, doc, ".flash-error", "Could not reach the player service")
	assert.False(t, ts.cookies.has("players"))
}

func TestRemovePlayer(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Alice")
	ts.addPlayer("Bob")

	rr := ts.post("/players/remove", url.Values{"username": {"Alice"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	doc := parseHTML(ts.followRedirect(rr).Body)
	assert.Equal(t, []string{"Bob"}, playerNames(doc))

	// Removing the last player deletes the cookie
	rr = ts.post("/players/remove", url.Values{"username": {"Bob"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.has("players"))

	doc = parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, ".empty")
}

func TestRemoveDropsEveryOccurrence(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Alice")
	ts.addPlayer("Bob")
	ts.addPlayer("Alice")

	rr := ts.post("/players/remove", url.Values{"username": {"Alice"}})
	doc := parseHTML(ts.followRedirect(rr).Body)
	assert.Equal(t, []string{"Bob"}, playerNames(doc))
}

func TestWatchlistEscapesNames(t *testing.T) {
	ts := newWebTestServer(t)
	ts.cookies.cookies["players"] = &http.Cookie{Name: "players", Value: "<b>x</b>"}

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "<b>x</b>")
}
