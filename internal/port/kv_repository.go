package port

import "context"

// KVRepository is the injected durable store behind the daily token
// allocator. Any key/value backend (Redis, MySQL, a local file) can
// stand in without touching allocator logic.
type KVRepository interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under the key, overwriting any prior value.
	Set(ctx context.Context, key, value string) error
}
