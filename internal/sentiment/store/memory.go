package store

import (
	"context"
	"sync"
	"time"
)

// InMemorySummaryCache is the process-local cache used when Redis is not
// configured, and by tests.
type InMemorySummaryCache struct {
	mu        sync.Mutex
	text      string
	expiresAt time.Time
}

// NewInMemorySummaryCache creates an empty in-memory cache.
func NewInMemorySummaryCache() *InMemorySummaryCache {
	return &InMemorySummaryCache{}
}

func (c *InMemorySummaryCache) Get(_ context.Context) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.text == "" || time.Now().After(c.expiresAt) {
		return "", false, nil
	}
	return c.text, true, nil
}

func (c *InMemorySummaryCache) Set(_ context.Context, text string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.expiresAt = time.Now().Add(ttl)
	return nil
}
