// Package pokeapi fetches species data and artwork from the public PokéAPI
// and projects responses into species records.
package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pokeapi-desk/pokemon-viewer/internal/species"
)

// Fetcher is implemented by *Client and can be replaced in tests.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*species.Record, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pokemon-viewer/1.0"
	defaultTimeout   = 15 * time.Second
	maxBodyBytes     = 16 << 20
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerMinute int
	Burst             int
	HTTPClient        *http.Client
}

// Client talks to the PokéAPI over HTTP. It performs exactly one request per
// call and keeps no cache.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	limiter   *RateLimiter
	logger    *zap.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rawBase := strings.TrimSpace(opts.BaseURL)
	if rawBase == "" {
		rawBase = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(rawBase, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("parse base url %q: unsupported scheme %q", opts.BaseURL, base.Scheme)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limiter := NewRateLimiter(opts.RequestsPerMinute, opts.Burst)
	logger.Debug("PokéAPI client configured",
		zap.String("base_url", base.String()),
		zap.String("rate_limit", limiter.LimitInfo(EndpointPokemon)))

	return &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: userAgent,
		limiter:   limiter,
		logger:    logger,
	}, nil
}

// Fetch looks up a species by name. The name is matched case-insensitively.
// Errors are *NotFoundError, *LookupError or *ParseError and all match
// ErrLookupFailed.
func (c *Client) Fetch(ctx context.Context, name string) (*species.Record, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil, &LookupError{Name: name, Err: fmt.Errorf("species name is empty")}
	}

	reqURL := c.baseURL.JoinPath("pokemon", url.PathEscape(query)).String()

	body, status, err := c.get(ctx, EndpointPokemon, reqURL, "application/json")
	if err != nil {
		return nil, &LookupError{Name: query, URL: reqURL, Err: err}
	}

	switch {
	case status == http.StatusNotFound:
		return nil, &NotFoundError{Name: query}
	case status < 200 || status > 299:
		return nil, &LookupError{Name: query, URL: reqURL, Status: status}
	}

	p, err := decodePokemon(query, body)
	if err != nil {
		return nil, err
	}

	return pokemonToRecord(p), nil
}

// FetchImage downloads the raw bytes behind an artwork URL.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, &LookupError{Err: ErrNoArtwork}
	}
	u, err := url.Parse(imageURL)
	if err != nil {
		return nil, &LookupError{URL: imageURL, Err: fmt.Errorf("parse artwork url: %w", err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &LookupError{URL: imageURL, Err: fmt.Errorf("unsupported artwork url scheme %q", u.Scheme)}
	}

	body, status, err := c.get(ctx, EndpointArtwork, u.String(), "image/*")
	if err != nil {
		return nil, &LookupError{URL: imageURL, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &LookupError{URL: imageURL, Status: status}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint EndpointType, reqURL, accept string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx, endpoint); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("PokéAPI request finished",
		zap.String("endpoint", string(endpoint)),
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return body, resp.StatusCode, nil
}
