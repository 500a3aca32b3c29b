package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// summaryKey is the single key holding the shared macro-sentiment summary.
const summaryKey = "centseek:sentiment:summary"

// RedisSummaryCache shares the fetched summary across instances.
type RedisSummaryCache struct {
	client redis.UniversalClient
}

// NewRedisSummaryCache wraps an established Redis client.
func NewRedisSummaryCache(client redis.UniversalClient) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Get(ctx context.Context) (string, bool, error) {
	text, err := c.client.Get(ctx, summaryKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, text string, ttl time.Duration) error {
	return c.client.Set(ctx, summaryKey, text, ttl).Err()
}
