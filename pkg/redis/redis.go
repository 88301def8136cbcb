package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient создает клиент Redis с проверкой соединения.
// Повторяет подключение с экспоненциальной задержкой и ограниченным числом попыток.
func NewRedisClient(ctx context.Context, addr, password string, db int, maxAttempts int, baseDelay time.Duration) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if _, err := rdb.Ping(ctx).Result(); err == nil {
			return rdb, nil
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("redis connect canceled after %d attempts: %w", attempt, lastErr)
		case <-time.After(delay):
			delay *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxAttempts, lastErr)
}
