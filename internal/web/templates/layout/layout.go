// Package layout holds the page shell shared by every page.
package layout

// FlashMessage is a one-shot notice shown on the next page render
type FlashMessage struct {
	Type    string // success, error or info
	Message string
}

// PageData is the data every page needs
type PageData struct {
	Title string
	Flash *FlashMessage
	// Active is the nav entry to highlight ("watchlist" or "auctions")
	Active string
}

type navLink struct {
	key   string
	href  string
	label string
}

var navLinks = []navLink{
	{"watchlist", "/", "Watchlist"},
	{"auctions", "/auctions", "Auctions"},
}

func flashColors(flashType string) string {
	switch flashType {
	case "error":
		return "bg-red-900 text-red-100"
	case "success":
		return "bg-green-900 text-green-100"
	default:
		return "bg-blue-900 text-blue-100"
	}
}
