package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow = time.Minute
	defaultLimit  = 5
)

// RateLimiter is a fixed-window request limiter backed by Redis, used to
// throttle the unauthenticated contact form per client address.
// Key format: ratelimit:<scope>:<client>
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
// Non-positive arguments fall back to 5 requests per minute.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, window: window, limit: limit}
}

// Allow increments the counter for (scope, clientKey) and reports whether
// the request is within the window's budget. The first hit in a window
// starts its expiry.
func (l *RateLimiter) Allow(ctx context.Context, scope, clientKey string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", scope, clientKey)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= l.limit, nil
}
