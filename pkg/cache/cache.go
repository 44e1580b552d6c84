// Package cache stores rendered artifacts keyed by the content that produced
// them. Rendering the same graph with the same options is deterministic, so a
// hit can be served without touching the drawing pipeline at all.
package cache

import (
	"context"
	"time"
)

// Cache is the backend-agnostic artifact store.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
