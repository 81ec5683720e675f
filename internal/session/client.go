// Package session is the HTTP client for the trading-session REST API: the
// simulation clock, the tender feed, and per-ticker order-book snapshots.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tenderbot-go/internal/book"
	"tenderbot-go/internal/metrics"
	"tenderbot-go/internal/tender"
)

const (
	// DefaultBaseURL targets the local session API.
	DefaultBaseURL = "http://localhost:9999/v1"

	defaultTimeout    = 10 * time.Second
	defaultRatePerSec = 10
	defaultBurst      = 5
)

// APIError reports a non-2xx response from the session API.
type APIError struct {
	Status   int
	Endpoint string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("session api %s: unexpected status %d", e.Endpoint, e.Status)
}

// Client talks to the session API with key auth and request pacing. The API
// throttles aggressive pollers, so every call waits on a shared limiter.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// Option configures Client construction parameters.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRateLimit overrides the request pacing applied to API calls.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *Client) {
		if perSec > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
		}
	}
}

// WithLogger attaches a logger for per-request diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a session client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(defaultRatePerSec), defaultBurst),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type caseResponse struct {
	Tick int `json:"tick"`
}

// Tick returns the session clock's current tick.
func (c *Client) Tick(ctx context.Context) (int, error) {
	var payload caseResponse
	if err := c.get(ctx, "/case", nil, &payload); err != nil {
		return 0, err
	}
	metrics.CurrentTick.Set(float64(payload.Tick))
	return payload.Tick, nil
}

// Tenders returns the current tender feed, most recent offer first.
func (c *Client) Tenders(ctx context.Context) ([]tender.Offer, error) {
	var offers []tender.Offer
	if err := c.get(ctx, "/tenders", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Book returns the order-book snapshot for one market ticker.
func (c *Client) Book(ctx context.Context, ticker string) (book.Book, error) {
	var b book.Book
	params := url.Values{"ticker": {ticker}}
	if err := c.get(ctx, "/securities/book", params, &b); err != nil {
		return book.Book{}, err
	}
	return b, nil
}

// Books fetches snapshots for every requested ticker. A market that fails to
// fetch is logged and omitted so one thin listing cannot sink the whole
// evaluation cycle; only cancellation aborts the sweep.
func (c *Client) Books(ctx context.Context, tickers []string) (map[string]book.Book, error) {
	books := make(map[string]book.Book, len(tickers))
	for _, ticker := range tickers {
		b, err := c.Book(ctx, ticker)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn().Err(err).Str("ticker", ticker).Msg("order book fetch failed")
			continue
		}
		books[ticker] = b
	}
	return books, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	metrics.SessionRequestsTotal.WithLabelValues(endpoint).Inc()

	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.SessionErrorsTotal.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.SessionErrorsTotal.WithLabelValues(endpoint).Inc()
		return &APIError{Status: resp.StatusCode, Endpoint: endpoint}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.SessionErrorsTotal.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
