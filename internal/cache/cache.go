// README: TTL key-value capability backing weather sample reuse.
package cache

import (
	"context"
	"time"
)

// Store is a get/set cache with per-entry TTL. Callers must tolerate stale
// values up to one TTL; concurrent writers follow last-write-wins and no
// implementation offers cross-key coordination.
type Store interface {
	// Get returns the cached value and true, or false when the key is
	// absent, expired, or the backend is unreachable.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl. Write failures are absorbed: a
	// cache write must never fail the request that produced the value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
