package testutil

// Stable identifiers shared by tests. GhostID is never registered with the
// fake upstream, so its lookups fail.
const (
	AliceID = "0f1e2d3c4b5a69788796a5b4c3d2e1f0"
	BobID   = "11112222333344445555666677778888"
	CarolID = "cccc1111dddd2222eeee3333ffff4444"
	GhostID = "99990000999900009999000099990000"
)
