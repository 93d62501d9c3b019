package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytracker/skytracker/internal/api"
	"github.com/skytracker/skytracker/internal/api/apierr"
	"github.com/skytracker/skytracker/internal/api/response"
	"github.com/skytracker/skytracker/internal/factory"
	"github.com/skytracker/skytracker/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp(t)
	app.SeedPlayers()

	router := api.NewRouter(api.RouterConfig{
		Logger:    testutil.NopLogger(),
		Tracker:   app.Tracker,
		Auctions:  app.Auctions,
		Pipeline:  app.Pipeline,
		NameCache: app.NameCache,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRelayResolvesUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/uuid?username=alice")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.Identity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, testutil.AliceID, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
}

func TestRelayMissingUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/uuid")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUsernameRequired, decodeError(t, rr).Code)
}

func TestRelayUnknownUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/uuid?username=nobody")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, decodeError(t, rr).Code)
}

func TestRelayNoContentIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Upstream.SetMojangStatus(http.StatusNoContent)

	rr := ts.request(http.MethodGet, "/api/uuid?username=alice")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRelayPassesThroughUpstreamStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Upstream.SetMojangStatus(http.StatusTooManyRequests)

	rr := ts.request(http.MethodGet, "/api/uuid?username=alice")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, apierr.CodeUpstreamError, decodeError(t, rr).Code)
}

func TestRelayNetworkFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Upstream.Server.Close()

	rr := ts.request(http.MethodGet, "/api/uuid?username=alice")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/Alice")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, testutil.AliceID, resp.ID)
	require.Len(t, resp.Profiles, 2)
	assert.Equal(t, "Apple", resp.Profiles[0].CuteName)
	assert.True(t, resp.Profiles[0].Selected)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/nobody")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListAuctions(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Upstream.SetAuctions([]map[string]any{
		testutil.Auction("a1", "Diamond Sword", "RARE", testutil.AliceID, testutil.BobID),
		testutil.Auction("a2", "Runaan's Bow", "LEGENDARY", testutil.CarolID),
	})

	rr := ts.request(http.MethodGet, "/api/v1/auctions?search=sword")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuctionPage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalResults)
	assert.Equal(t, 1, resp.Page)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.Equal(t, "Diamond Sword", item.ItemName)
	assert.Equal(t, "Alice", item.Seller.Name)
	assert.Equal(t, "Bob", item.CoOwners[0].Name)
	assert.Equal(t, "2.5m", item.HighestPrice)
	assert.Equal(t, "1.5k", item.StartingPrice)
	assert.Equal(t, []string{"A fine item", "LEGENDARY"}, item.Lore)
}

func TestListAuctionsPageSize(t *testing.T) {
	ts := newTestServer(t)
	var entries []map[string]any
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		entries = append(entries, testutil.Auction(id, "Sword "+id, "COMMON", testutil.AliceID))
	}
	ts.app.Upstream.SetAuctions(entries)

	rr := ts.request(http.MethodGet, "/api/v1/auctions?page=2&page_size=2")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuctionPage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Sword c", resp.Items[0].ItemName)
}

func TestListAuctionsInvalidPage(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/auctions?page=abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)

	rr = ts.request(http.MethodGet, "/api/v1/auctions?page_size=1000")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListAuctionsUpstreamFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.app.Upstream.SetAuctionsStatus(http.StatusServiceUnavailable)

	rr := ts.request(http.MethodGet, "/api/v1/auctions")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, apierr.CodeUpstreamError, decodeError(t, rr).Code)
}

func TestGetNames(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/names?id="+testutil.AliceID+"&id="+testutil.GhostID)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.NamesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Names[testutil.AliceID].Username)
	assert.Equal(t, testutil.GhostID, resp.Names[testutil.GhostID].Username)

	// Second request is served from the cache
	rr = ts.request(http.MethodGet, "/api/v1/names?id="+testutil.AliceID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, ts.app.Upstream.Lookups(testutil.AliceID))
}

func TestGetNamesAcceptsDashedIdentifiers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/names?id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), testutil.AliceID)
}

func TestGetNamesValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/names")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/names?id=not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/unknown")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
