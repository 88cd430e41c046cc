package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// AttemptLimiter throttles repeated login failures per identity,
// backed by a Redis counter with a sliding expiry.
// Key format: login_attempts:<identity>
type AttemptLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewAttemptLimiter creates an AttemptLimiter wrapping the given Redis
// client. Non-positive maxFailures or window fall back to defaults.
func NewAttemptLimiter(client *redis.Client, maxFailures int64, window time.Duration) *AttemptLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &AttemptLimiter{client: client, maxFailures: maxFailures, window: window}
}

// Allow reports whether identity is still under the failure threshold.
func (l *AttemptLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(identity)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("attempt count: %w", err)
	}
	return n < l.maxFailures, nil
}

// RecordFailure counts one failed attempt and refreshes the window.
func (l *AttemptLimiter) RecordFailure(ctx context.Context, identity string) error {
	key := l.key(identity)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record failure: %w", err)
	}
	return nil
}

// Reset clears the failure count after a successful login.
func (l *AttemptLimiter) Reset(ctx context.Context, identity string) error {
	if err := l.client.Del(ctx, l.key(identity)).Err(); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	return nil
}

func (l *AttemptLimiter) key(identity string) string {
	return "login_attempts:" + identity
}
