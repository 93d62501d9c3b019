package pages

import (
	"github.com/skytracker/skytracker/internal/services/tracker"
	"github.com/skytracker/skytracker/internal/web/templates/layout"
)

// PlayerData is the data for a player's profile page
type PlayerData struct {
	layout.PageData
	Player *tracker.Player
	Error  string
}
