// Package redis backs the login throttle with a Redis counter store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webshop/webshop-api/internal/pkg/config"
)

const defaultDialTimeout = 5 * time.Second

// Connect builds a Redis client from the service configuration and verifies
// it with a ping. Callers treat a connection failure as "run without a
// throttle" rather than a fatal condition.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
