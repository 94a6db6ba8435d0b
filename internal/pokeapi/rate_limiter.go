package pokeapi

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// EndpointType groups requests that share a rate budget.
type EndpointType string

const (
	EndpointPokemon EndpointType = "pokemon"
	EndpointArtwork EndpointType = "artwork"
)

// RateLimiter paces requests per endpoint so the public API's fair-use
// policy is respected.
type RateLimiter struct {
	limiters map[EndpointType]*rate.Limiter
	perMin   int
}

// NewRateLimiter allows requestsPerMinute per endpoint with the given burst.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 100
	}
	if burst <= 0 {
		burst = 1
	}
	every := rate.Every(time.Minute / time.Duration(requestsPerMinute))

	return &RateLimiter{
		limiters: map[EndpointType]*rate.Limiter{
			EndpointPokemon: rate.NewLimiter(every, burst),
			EndpointArtwork: rate.NewLimiter(every, burst),
		},
		perMin: requestsPerMinute,
	}
}

// Wait blocks until the endpoint may issue a request or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context, endpoint EndpointType) error {
	limiter, ok := r.limiters[endpoint]
	if !ok {
		return fmt.Errorf("no limiter configured for endpoint %s", endpoint)
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait failed: %w", err)
	}
	return nil
}

// Allow reports whether a request may be issued right now without waiting.
func (r *RateLimiter) Allow(endpoint EndpointType) bool {
	limiter, ok := r.limiters[endpoint]
	if !ok {
		return false
	}
	return limiter.Allow()
}

// LimitInfo returns a human-readable description of the budget.
func (r *RateLimiter) LimitInfo(endpoint EndpointType) string {
	if _, ok := r.limiters[endpoint]; !ok {
		return "Unknown endpoint"
	}
	return fmt.Sprintf("%d req/min", r.perMin)
}
