package pages

import (
	"github.com/skytracker/skytracker/internal/web/templates/layout"
)

// ErrorData is the data for a standalone error page
type ErrorData struct {
	layout.PageData
	Message string
}

func errorText(message string) string {
	if message == "" {
		return "Something went wrong."
	}
	return message
}
