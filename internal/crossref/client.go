// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/ShangtingYou/zoteroid/internal/httputil"
	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// apiBase is the works endpoint. Declared as a var so tests can
// substitute httptest servers.
var apiBase = "https://api.crossref.org/works/"

// Sentinel errors distinguishing registry failure modes. Callers match
// them with errors.Is to pick a user-visible message.
var (
	// ErrNotFound covers a non-success registry status and a parsable
	// response without a message payload.
	ErrNotFound = errors.New("identifier not found")

	// ErrTransport covers network-level request failures.
	ErrTransport = errors.New("network error")

	// ErrDecode covers an unparsable response body.
	ErrDecode = errors.New("metadata read error")
)

// Client looks up bibliographic records by DOI.
type Client struct {
	http    *http.Client
	cfg     types.RegistryConfig
	limiter *rate.Limiter
}

// NewClient builds a registry client from config. Requests are paced at
// cfg.RequestsPerSecond so batch imports stay polite.
func NewClient(cfg types.RegistryConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// userAgent returns the User-Agent header, with the polite-pool mailto
// appended when configured.
func (c *Client) userAgent() string {
	if c.cfg.Mailto != "" {
		return fmt.Sprintf("%s (mailto:%s)", c.cfg.UserAgent, c.cfg.Mailto)
	}
	return c.cfg.UserAgent
}

// Lookup resolves a canonical DOI to its bibliographic record. HTTP 429
// responses are retried with backoff; other non-success statuses map to
// ErrNotFound.
func (c *Client) Lookup(ctx context.Context, doi string) (*Work, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+url.PathEscape(doi), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: registry returned HTTP %d for %s", ErrNotFound, resp.StatusCode, doi)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if r.Message == nil {
		return nil, fmt.Errorf("%w: response carries no record for %s", ErrNotFound, doi)
	}
	return r.Message, nil
}
