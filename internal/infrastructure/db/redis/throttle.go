package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultFailureWindow = 15 * time.Minute

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: loginfail:<email>, expiring after the configured window so a
// burst of bad passwords locks the account out only temporarily.
type LoginThrottle struct {
	client *redis.Client
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client, window time.Duration) *LoginThrottle {
	if window <= 0 {
		window = defaultFailureWindow
	}
	return &LoginThrottle{client: client, window: window}
}

// Failures returns the number of failed attempts recorded for email within
// the current window.
func (t *LoginThrottle) Failures(ctx context.Context, email string) (int64, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("throttle get: %w", err)
	}
	return n, nil
}

// RecordFailure increments the failure counter, starting the expiry window on
// the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "loginfail:" + email
}
