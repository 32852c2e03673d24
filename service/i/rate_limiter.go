package i

import "context"

// RateLimiter counts requests per key over a sliding window.
type RateLimiter interface {
	// Allow records one request for key and reports whether it fits in the window.
	Allow(ctx context.Context, key string) (bool, error)
}
