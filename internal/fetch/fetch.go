// Package fetch retrieves a puzzle page and decodes its embedded batch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sudoq/internal/extract"
	"sudoq/internal/model"
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 30 * time.Second

// Fetcher returns one candidate batch per call. Successive calls may
// observe different batches from the upstream source.
type Fetcher func(ctx context.Context) ([]model.Record, error)

// Client fetches puzzle pages over HTTP.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
}

// New returns a Client with the given request timeout.
func New(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
	}
}

// Fetch downloads url and extracts its embedded puzzle batch.
func (c *Client) Fetch(ctx context.Context, url string) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	records, err := extract.PreloadedPuzzles(string(body))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}
	slog.Debug("fetched puzzle batch", "url", url, "count", len(records))
	return records, nil
}

// Fetcher adapts the client to a bound upstream URL.
func (c *Client) Fetcher(url string) Fetcher {
	return func(ctx context.Context) ([]model.Record, error) {
		return c.Fetch(ctx, url)
	}
}
