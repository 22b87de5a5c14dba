package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	failureWindow      = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per account, backed by a
// Redis counter with a sliding expiry.
// Key format: login_failures:<email>
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// maxFailures <= 0 selects the default threshold.
func NewLoginLimiter(client *redis.Client, maxFailures int) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures}
}

// TooManyFailures reports whether the account has hit the failure threshold
// within the current window.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	return l.client.Expire(ctx, key, failureWindow).Err()
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login_failures:%s", email)
}
