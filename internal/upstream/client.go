// Package upstream holds the HTTP clients for the third-party APIs the
// tracker is built on: Mojang (name → identifier), SkyCrypt (profiles),
// Hypixel (auction snapshot) and PlayerDB (identifier → name/avatar).
//
// Every client issues exactly one attempt per call. Failures are classified
// into the model error taxonomy so callers can decide between surfacing an
// error and degrading to a fallback.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/skytracker/skytracker/internal/model"
)

// Default upstream endpoints
const (
	DefaultMojangURL   = "https://api.mojang.com"
	DefaultSkyCryptURL = "https://sky.shiiyu.moe"
	DefaultHypixelURL  = "https://api.hypixel.net"
	DefaultPlayerDBURL = "https://playerdb.co"
)

// Config holds settings shared by every upstream client
type Config struct {
	BaseURL string
	// Timeout bounds a single request. Zero means DefaultTimeout.
	Timeout time.Duration
	Logger  *slog.Logger
}

// DefaultTimeout is applied when Config.Timeout is zero
const DefaultTimeout = 10 * time.Second

const userAgent = "skytracker/1.0"

// base is embedded by each client
type base struct {
	service string
	http    *resty.Client
	logger  *slog.Logger
}

func newBase(service, defaultURL string, cfg Config) base {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return base{
		service: service,
		http:    client,
		logger:  logger.With(slog.String("upstream", service)),
	}
}

// getJSON performs a GET and decodes a JSON body into out.
// Transport failures wrap model.ErrNetwork, non-2xx (and 204) responses
// become *model.UpstreamError and undecodable bodies wrap
// model.ErrMalformedResponse.
func (b base) getJSON(ctx context.Context, path string, pathParams map[string]string, out any) error {
	start := time.Now()

	resp, err := b.http.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		Get(path)
	if err != nil {
		b.logger.Debug("upstream request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w: %w", b.service, model.ErrNetwork, err)
	}

	b.logger.Debug("upstream request",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", time.Since(start)),
	)

	if !resp.IsSuccess() || resp.StatusCode() == http.StatusNoContent {
		return &model.UpstreamError{Service: b.service, Status: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: %w: %w", b.service, model.ErrMalformedResponse, err)
	}
	return nil
}
