// Package store caches the fetched macro-sentiment summary. Macro conditions
// are global, so one fetched summary serves every session until its TTL
// lapses; the cache only saves quota, it is never required for correctness.
package store

import (
	"context"
	"time"
)

// SummaryCache holds the most recently fetched summary text.
type SummaryCache interface {
	// Get returns the cached summary and whether one was present.
	Get(ctx context.Context) (string, bool, error)
	// Set stores the summary for the given TTL.
	Set(ctx context.Context, text string, ttl time.Duration) error
}
