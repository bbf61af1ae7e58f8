package cache

import (
	"context"
	"time"
)

// Store is the leaf key/value container behind the Accessor. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get returns the value cached under key. An expired entry is reported
	// as absent; it may be lazily purged or left for later eviction.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores val under key, expiring ttl from now. Overwrites any
	// existing entry for that key.
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error

	// Remove deletes any entry for key; absent keys are a no-op, not an
	// error.
	Remove(ctx context.Context, key string) error
}
