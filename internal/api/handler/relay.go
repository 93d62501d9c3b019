package handler

import (
	"net/http"

	"github.com/skytracker/skytracker/internal/api/response"
	"github.com/skytracker/skytracker/internal/services/tracker"
)

// RelayHandler proxies username lookups to the identity service
type RelayHandler struct {
	tracker *tracker.Service
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(tracker *tracker.Service) *RelayHandler {
	return &RelayHandler{
		tracker: tracker,
	}
}

// UUID handles GET /api/uuid?username=
func (h *RelayHandler) UUID(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tracker.ResolveID(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.IdentityFromModel(identity))
}
