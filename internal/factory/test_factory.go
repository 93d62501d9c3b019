package factory

import (
	"testing"
	"time"

	"github.com/skytracker/skytracker/internal/dependencies/mocks"
	"github.com/skytracker/skytracker/internal/storage/memory"
	"github.com/skytracker/skytracker/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Fakes for test control
	MockClock *mocks.MockClock
	Upstream  *testutil.FakeUpstream
	Cache     *memory.Storage
}

// NewTestApp creates an App whose upstream clients all talk to a fake
// server, with an in-memory name cache and a mocked clock
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	fake := testutil.NewFakeUpstream(t)
	cache := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	cfg := Config{
		Upstream: UpstreamConfig{
			MojangURL:   fake.URL(),
			SkyCryptURL: fake.URL(),
			HypixelURL:  fake.URL(),
			PlayerDBURL: fake.URL(),
			Timeout:     5 * time.Second,
		},
	}
	app := newWithDependencies(cache, mockClock, cfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Upstream:  fake,
		Cache:     cache,
	}
}

// SeedPlayers registers the players used across tests with the fake upstream
func (t *TestApp) SeedPlayers() {
	t.Upstream.AddPlayer(testutil.FakePlayer{ID: testutil.AliceID, Name: "Alice", Avatar: "https://crafatar.com/avatars/" + testutil.AliceID})
	t.Upstream.AddPlayer(testutil.FakePlayer{ID: testutil.BobID, Name: "Bob"})
	t.Upstream.AddPlayer(testutil.FakePlayer{ID: testutil.CarolID, Name: "Carol"})
}
