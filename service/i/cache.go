package i

import (
	"context"
	"time"
)

// LayoutCache caches serialized layouts keyed by their generation
// parameters and tracks recently generated labyrinth IDs.
type LayoutCache interface {
	// GetOrFill returns the cached layout for key. On a miss it calls
	// fill under a distributed lock, stores the result and returns it;
	// errors from fill propagate unchanged.
	GetOrFill(ctx context.Context, key string, fill func() (string, error)) (string, error)

	// PushRecent records a labyrinth ID on the recent index with the
	// given timestamp.
	PushRecent(ctx context.Context, id string, at time.Time) error

	// Recent returns up to limit IDs from the recent index, newest first.
	Recent(ctx context.Context, limit int64) ([]string, error)
}
