// Package watchlist persists the tracked usernames in a browser cookie.
// Nothing is stored on the server.
package watchlist

import (
	"net/http"
	"strings"
	"time"

	"github.com/skytracker/skytracker/internal/dependencies/clock"
)

const (
	// CookieName is the cookie holding the comma-joined usernames
	CookieName = "players"
	// CookieTTL is how long the watchlist cookie lives after each save
	CookieTTL = 7 * 24 * time.Hour

	separator = ","
)

// Store reads and writes the watchlist cookie
type Store struct {
	clock clock.Clock
}

// New creates a new Store
func New(clk clock.Clock) *Store {
	return &Store{clock: clk}
}

// Load returns the usernames in the request's watchlist cookie.
// A missing or empty cookie yields an empty list.
func (s *Store) Load(r *http.Request) []string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return []string{}
	}
	return Parse(cookie.Value)
}

// Save writes names to the watchlist cookie, or deletes the cookie when
// names is empty.
func (s *Store) Save(w http.ResponseWriter, names []string) {
	if len(names) == 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    Join(names),
		Path:     "/",
		MaxAge:   int(CookieTTL.Seconds()),
		Expires:  s.clock.Now().Add(CookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Add appends name to the request's watchlist and saves the result
func (s *Store) Add(w http.ResponseWriter, r *http.Request, name string) []string {
	names := Append(s.Load(r), name)
	s.Save(w, names)
	return names
}

// Remove drops name from the request's watchlist and saves the result
func (s *Store) Remove(w http.ResponseWriter, r *http.Request, name string) []string {
	names := Without(s.Load(r), name)
	s.Save(w, names)
	return names
}

// Parse splits a cookie value into usernames. Entries are trimmed and blank
// ones dropped, so a hand-edited cookie never yields an empty name.
func Parse(value string) []string {
	names := []string{}
	for _, name := range strings.Split(value, separator) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Join encodes usernames as a cookie value
func Join(names []string) string {
	return strings.Join(names, separator)
}

// Append returns a new list with name added at the end.
// Duplicates are allowed.
func Append(names []string, name string) []string {
	out := make([]string, 0, len(names)+1)
	out = append(out, names...)
	return append(out, name)
}

// Without returns a new list with every occurrence of name removed
func Without(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
