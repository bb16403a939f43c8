// Package nhle provides the HTTP client and fetchers for the NHL web API.
//
// The API has two generations: the current api-web host and the legacy
// statsapi host, which the schedule fetcher still falls back to. Requests are
// issued strictly one at a time through a token bucket limiter configured
// for a fixed inter-request delay. The delay is politeness toward the
// third-party API, not a throughput knob.
package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the current-generation NHL web API.
	BaseURL = "https://api-web.nhle.com/v1"
	// LegacyBaseURL is the previous-generation stats API, kept only for the
	// schedule endpoint fallback.
	LegacyBaseURL = "https://statsapi.web.nhl.com/api/v1"
	// SearchBaseURL hosts the player search/directory endpoint.
	SearchBaseURL = "https://search.d3.nhle.com/api/v1"

	userAgent = "NHL Player Database Generator 1.0"

	// progressEvery controls how often the client logs request progress.
	progressEvery = 20
)

// Client is the shared HTTP client for all NHL endpoints. The pipeline
// drives it sequentially, but the API server shares one instance across
// concurrent handlers, so the completed-request counter is atomic.
type Client struct {
	httpClient *http.Client
	baseURL    string
	legacyURL  string
	searchURL  string
	limiter    *rate.Limiter
	logger     *slog.Logger
	completed  atomic.Int64
}

// NewClient creates an NHL API client that waits at least delay between
// consecutive requests.
func NewClient(delay time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    BaseURL,
		legacyURL:  LegacyBaseURL,
		searchURL:  SearchBaseURL,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// Completed reports how many requests have finished, success or failure.
func (c *Client) Completed() int {
	return int(c.completed.Load())
}

// get performs a rate-limited GET request against a fully formed URL.
// Returns the raw body on a 2xx status, a *StatusError otherwise.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := c.do(ctx, url)

	if n := c.completed.Add(1); n%progressEvery == 0 {
		c.logger.Info("Request progress", "completed", n)
	}
	return body, err
}

func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}
	return body, nil
}

// getJSON fetches a URL and decodes its body into out. A body that does not
// match the expected schema yields a *ParseError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{URL: url, Err: err}
	}
	return nil
}
