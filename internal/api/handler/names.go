package handler

import (
	"net/http"

	"github.com/skytracker/skytracker/internal/api/response"
	"github.com/skytracker/skytracker/internal/model"
	"github.com/skytracker/skytracker/internal/services/enrich"
)

// maxNameIDs bounds the number of identifiers per names request
const maxNameIDs = 100

// NameHandler resolves stable identifiers to display names
type NameHandler struct {
	pipeline *enrich.Pipeline
}

// NewNameHandler creates a new name handler
func NewNameHandler(pipeline *enrich.Pipeline) *NameHandler {
	return &NameHandler{
		pipeline: pipeline,
	}
}

// Get handles GET /api/v1/names?id=..&id=..
func (h *NameHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["id"]
	if len(raw) == 0 {
		WriteError(w, NewInvalidRequestError("at least one id is required"))
		return
	}
	if len(raw) > maxNameIDs {
		WriteError(w, NewInvalidRequestError("too many ids"))
		return
	}

	ids := make([]model.PlayerID, 0, len(raw))
	for _, s := range raw {
		id, err := model.ParsePlayerID(s)
		if err != nil {
			WriteError(w, err)
			return
		}
		ids = append(ids, id)
	}

	names, err := h.pipeline.Names(r.Context(), ids)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NamesFromModel(names))
}
