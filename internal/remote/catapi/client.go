// Package catapi implements remote.Source against TheCatAPI
// (https://api.thecatapi.com/v1). Authentication is a static x-api-key
// header; the free tier is rate limited, so all calls go through a shared
// limiter.
package catapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"catkeeper/internal/logging"
	"catkeeper/internal/shared"
)

const apiKeyHeader = "x-api-key"

// Client talks to TheCatAPI. Safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logging.Logger
}

// Option tweaks a Client at construction time.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit overrides the default request pacing.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(r, burst) }
}

// New creates a Client for the given base URL ("https://api.thecatapi.com/v1")
// and API key. Defaults: 15s request timeout, 10 req/s with a burst of 5.
func New(baseURL, apiKey string, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 5),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one HTTP exchange and decodes the response into out (when out
// is non-nil). Transport failures wrap shared.ErrNetwork, non-2xx statuses
// wrap shared.ErrServer. An empty 2xx body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", shared.ErrNetwork, err)
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", shared.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a little of the body for diagnostics; the API returns short
		// plain-text or JSON error messages.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: %s %s: status %d: %s",
			shared.ErrServer, method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", shared.ErrNetwork, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// get wraps read-only calls in a short exponential backoff. Only reads are
// retried; mutations stay single-shot so the favourite state machine owns
// their failure policy.
func (c *Client) get(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if err != nil && ctx.Err() == nil {
			c.log.Debug(ctx, "retryable request failed", "path", path, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}
