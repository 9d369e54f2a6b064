package cache

import (
	"context"
	"time"
)

// Cache is a small string cache the autocomplete service reads through.
// Implementations must be safe for concurrent use.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}
