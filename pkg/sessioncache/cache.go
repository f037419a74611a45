package sessioncache

import (
	"context"
	"time"
)

// Cache is the session cache contract. Get returns ErrNotFound for absent or
// expired keys; implementations must treat expiry as absence.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
