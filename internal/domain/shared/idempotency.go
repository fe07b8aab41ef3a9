package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers which event deliveries a consumer already handled.
type IdempotencyStore interface {
	// MarkProcessed records key for ttl and reports whether it was new.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
	IsProcessed(ctx context.Context, key string) (bool, error)
	Close() error
}

// IdempotencyConfig configures one deduplicating consumer.
// Scope separates consumers sharing a store, so two handlers of the same
// event do not suppress each other.
type IdempotencyConfig struct {
	Enabled bool
	TTL     time.Duration
	Scope   string
}

// Key is the store key for eventID within the configured scope
func (c IdempotencyConfig) Key(eventID string) string {
	if c.Scope == "" {
		return eventID
	}
	return c.Scope + ":" + eventID
}

// DefaultIdempotencyConfig keeps event ids for a day
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{Enabled: true, TTL: 24 * time.Hour}
}
