// Package adminapi provides a RecordSource backed by the admin content
// service's REST endpoint.
package adminapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mdsolution/vitrine/internal/adapters/driven/recordjson"
	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RecordSource = (*Client)(nil)

// Default configuration values.
const (
	DefaultTable   = "services_data"
	DefaultTimeout = 8 * time.Second

	// maxResponseBytes caps the body read from the service.
	maxResponseBytes = 8 << 20
)

// Config holds configuration for the admin API client.
type Config struct {
	// BaseURL is the service root, e.g. https://xyz.supabase.co (required).
	BaseURL string

	// APIKey is the public API key sent as apikey and bearer token (required).
	APIKey string

	// Table is the records table (default: services_data).
	Table string

	// Timeout bounds each request (default: 8s).
	Timeout time.Duration

	// RatePerSecond is the sustained request rate (default: 5).
	RatePerSecond float64

	// HTTPClient overrides the transport. Timeout still applies.
	HTTPClient *http.Client
}

// Client fetches service records over HTTP.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	limiter  *RateLimiter
}

// NewClient creates a new admin API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("adminapi: base URL is required: %w", domain.ErrSourceNotConfigured)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("adminapi: API key is required: %w", domain.ErrSourceNotConfigured)
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("adminapi: invalid base URL %q: %w", cfg.BaseURL, domain.ErrInvalidInput)
	}
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	clone := *httpClient
	clone.Timeout = cfg.Timeout

	base.Path += "/rest/v1/" + cfg.Table
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "display_order.asc")
	base.RawQuery = query.Encode()

	return &Client{
		client:   &clone,
		endpoint: base.String(),
		apiKey:   cfg.APIKey,
		limiter:  NewRateLimiter(cfg.RatePerSecond, DefaultBurst),
	}, nil
}

// Endpoint returns the full records URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch retrieves every record in one request.
func (c *Client) Fetch(ctx context.Context) ([]domain.ServiceRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("adminapi: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("adminapi: create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adminapi: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("adminapi: read response: %w: %w", domain.ErrSourceUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		after := parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		c.limiter.RecordRateLimit(after)
		logger.Warn("adminapi: rate limited, backing off for %s", c.limiter.Backoff().Round(time.Second))
		return nil, fmt.Errorf("adminapi: %w", domain.ErrRateLimited)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("adminapi: status %d: %s: %w",
			resp.StatusCode, snippet(body), domain.ErrSourceUnavailable)
	}

	records, err := recordjson.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("adminapi: decode: %w", err)
	}
	logger.Debug("adminapi: fetched %d records", len(records))
	return records, nil
}

// snippet trims an error body for messages.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
