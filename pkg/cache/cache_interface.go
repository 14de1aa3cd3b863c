package cache

import (
	"context"
	"time"
)

// Cache is the contract for the shared key-value layer. Implementations must
// make every operation a single atomic call at the storage layer, since the
// token blocklist is shared across all request-handling goroutines.
type Cache interface {
	// Get reads key into dest. Returns found=false on cache miss,
	// leaving dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
