package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/skytracker/skytracker/internal/api/response"
)

// Client is an HTTP client for the API
type Client struct {
	http *resty.Client
}

// NewClient creates a new API client
func NewClient(baseURL string, verbose bool) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json").
		SetError(&ErrorResponse{}).
		SetDebug(verbose)

	return &Client{http: http}
}

// APIError represents an error response from the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// AuctionQuery selects a page of auction listings
type AuctionQuery struct {
	Search   string
	Page     int
	PageSize int
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (response.Health, error) {
	var result response.Health
	err := c.do(c.http.R().SetContext(ctx).SetResult(&result), "/api/v1/health")
	return result, err
}

// UUID resolves a username through the relay endpoint
func (c *Client) UUID(ctx context.Context, username string) (response.Identity, error) {
	var result response.Identity
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("username", username).
		SetResult(&result)
	err := c.do(req, "/api/uuid")
	return result, err
}

// Player calls GET /api/v1/players/{username}
func (c *Client) Player(ctx context.Context, username string) (response.Player, error) {
	var result response.Player
	req := c.http.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetResult(&result)
	err := c.do(req, "/api/v1/players/{username}")
	return result, err
}

// Auctions calls GET /api/v1/auctions
func (c *Client) Auctions(ctx context.Context, q AuctionQuery) (response.AuctionPage, error) {
	var result response.AuctionPage
	req := c.http.R().SetContext(ctx).SetResult(&result)
	if q.Search != "" {
		req.SetQueryParam("search", q.Search)
	}
	if q.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		req.SetQueryParam("page_size", strconv.Itoa(q.PageSize))
	}
	err := c.do(req, "/api/v1/auctions")
	return result, err
}

// Names calls GET /api/v1/names for the given identifiers
func (c *Client) Names(ctx context.Context, ids []string) (response.NamesResponse, error) {
	var result response.NamesResponse
	req := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(map[string][]string{"id": ids}).
		SetResult(&result)
	err := c.do(req, "/api/v1/names")
	return result, err
}

func (c *Client) do(req *resty.Request, path string) error {
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		if errResp, ok := resp.Error().(*ErrorResponse); ok && errResp.Error.Code != "" {
			return &errResp.Error
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
