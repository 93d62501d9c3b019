package handler

import (
	"net/http"

	"github.com/skytracker/skytracker/internal/api/response"
	"github.com/skytracker/skytracker/internal/storage"
)

// HealthHandler reports liveness and the name cache size
type HealthHandler struct {
	cache storage.NameCache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cache storage.NameCache) *HealthHandler {
	return &HealthHandler{
		cache: cache,
	}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	size, err := h.cache.Len(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Health{Status: "ok", Cached: size})
}
