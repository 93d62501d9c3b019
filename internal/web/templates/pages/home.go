package pages

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/skytracker/skytracker/internal/web/templates/layout"
)

// WatchedPlayer is one entry of the watchlist
type WatchedPlayer struct {
	Name    string
	HeadURL string
}

// HomeData is the data for the watchlist page
type HomeData struct {
	layout.PageData
	Players []WatchedPlayer
}

func playerURL(name string) templ.SafeURL {
	return templ.URL("/players/" + url.PathEscape(name))
}
