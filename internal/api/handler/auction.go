package handler

import (
	"net/http"
	"strconv"

	"github.com/skytracker/skytracker/internal/api/response"
	"github.com/skytracker/skytracker/internal/services/auctions"
)

// maxPageSize bounds page_size on the JSON API
const maxPageSize = 100

// AuctionHandler handles auction browsing endpoints
type AuctionHandler struct {
	auctions *auctions.Service
}

// NewAuctionHandler creates a new auction handler
func NewAuctionHandler(auctions *auctions.Service) *AuctionHandler {
	return &AuctionHandler{
		auctions: auctions,
	}
}

// List handles GET /api/v1/auctions?search=&page=&page_size=
func (h *AuctionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1)
	if err != nil {
		WriteError(w, NewInvalidRequestError("page must be a number"))
		return
	}
	pageSize, err := intParam(q.Get("page_size"), 0)
	if err != nil || pageSize < 0 || pageSize > maxPageSize {
		WriteError(w, NewInvalidRequestError("page_size must be between 1 and 100"))
		return
	}

	result, err := h.auctions.Browse(r.Context(), auctions.Query{
		Search:   q.Get("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuctionPageFromView(result))
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
