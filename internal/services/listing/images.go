package listing

import (
	"net/url"
	"strconv"

	"github.com/skytracker/skytracker/internal/model"
)

// PlaceholderImageURL replaces images that fail to load
const PlaceholderImageURL = "https://via.placeholder.com/100"

// ItemImageURL returns the icon URL for an item instance
func ItemImageURL(itemID string) string {
	return "https://static.hypixel.net/skyblock/items/" + url.PathEscape(itemID) + ".png"
}

// HeadURL returns a rendered player head for a name or identifier.
// size <= 0 lets the rendering service pick its default.
func HeadURL(nameOrID string, size int) string {
	u := "https://minotar.net/helm/" + url.PathEscape(nameOrID)
	if size > 0 {
		u += "/" + strconv.Itoa(size)
	}
	return u
}

// AvatarURL prefers the resolved avatar and falls back to the head render
func AvatarURL(id model.PlayerID, r model.ResolvedIdentity) string {
	if r.AvatarRef != "" {
		return r.AvatarRef
	}
	return HeadURL(string(id), 0)
}
