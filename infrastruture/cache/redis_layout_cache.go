// Package cache provides the Redis-backed layout cache with a
// distributed fill lock and a sorted-set index of recent labyrinths.
package cache

import (
	"context"
	"time"

	"github.com/cbs4385/labyrinth-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const recentIndexKey = "labyrinth:recent"

// RedisLayoutCache caches serialized layouts with a TTL and keeps the
// recently generated labyrinth IDs in a sorted set scored by creation
// time.
type RedisLayoutCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLayoutCache initializes a RedisLayoutCache with the provided Redis client and TTL.
func NewRedisLayoutCache(client *redis.Client, ttlSeconds int) (i.LayoutCache, error) {
	layoutCache := &RedisLayoutCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	layoutCache.locker = redsync.New(pool)
	return layoutCache, nil
}

// GetOrFill returns the cached layout for key, running fill under a
// distributed mutex on a miss so concurrent requests for the same
// parameters generate only once.
func (c *RedisLayoutCache) GetOrFill(ctx context.Context, key string, fill func() (string, error)) (string, error) {
	if layout, err := c.client.Get(ctx, key).Result(); err == nil {
		return layout, nil
	}

	mutex := c.locker.NewMutex(key + ":fill_lock")
	if err := mutex.Lock(); err != nil {
		return "", err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// Another holder may have filled the key while we waited for the lock.
	if layout, err := c.client.Get(ctx, key).Result(); err == nil {
		return layout, nil
	}

	layout, err := fill()
	if err != nil {
		return "", err
	}

	if err := c.client.Set(ctx, key, layout, c.ttl).Err(); err != nil {
		return "", err
	}
	return layout, nil
}

// PushRecent records a labyrinth ID on the recent index, scored by its
// creation time, and sets the index expiration if necessary.
func (c *RedisLayoutCache) PushRecent(ctx context.Context, id string, at time.Time) error {
	_, err := c.client.ZAdd(ctx, recentIndexKey, redis.Z{
		Score:  float64(at.UnixNano()),
		Member: id,
	}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := c.client.TTL(ctx, recentIndexKey).Result()
	if err == nil && ttl == -1 {
		_ = c.client.Expire(ctx, recentIndexKey, c.ttl).Err()
	}

	return nil
}

// Recent returns up to limit labyrinth IDs, newest first.
func (c *RedisLayoutCache) Recent(ctx context.Context, limit int64) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	return c.client.ZRevRange(ctx, recentIndexKey, 0, limit-1).Result()
}
