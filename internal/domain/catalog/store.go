package catalog

import (
	"context"
	"time"
)

// Cache stores serialized catalog listings under canonical keys with a TTL.
// Expired entries behave as absent; callers recompute and overwrite.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
