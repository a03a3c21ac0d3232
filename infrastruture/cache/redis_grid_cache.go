// Package cache implements the Redis-backed hot cache for maze grid text,
// with per-maze distributed locks serializing solve cycles.
package cache

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/amazing-mazes/maze-api/service/i"
)

const gridKeyPrefix = "maze:grid:"

// RedisGridCache stores grid text in Redis with TTL support and hands out
// redsync mutexes keyed by maze ID.
type RedisGridCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisGridCache initializes a RedisGridCache with the provided Redis client and TTL.
func NewRedisGridCache(client *redis.Client, ttlSeconds int) (i.GridCache, error) {
	cache := &RedisGridCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Save stores the grid text for a maze ID, refreshing the TTL.
func (c *RedisGridCache) Save(ctx context.Context, id uuid.UUID, gridText string) error {
	return c.client.Set(ctx, gridKey(id), gridText, c.ttl).Err()
}

// Get returns the cached grid text for a maze ID. A miss yields an error.
func (c *RedisGridCache) Get(ctx context.Context, id uuid.UUID) (string, error) {
	return c.client.Get(ctx, gridKey(id)).Result()
}

// WithLock runs fn while holding the per-maze mutex. Solvers mutate the
// grid in place, so two solves of the same maze must never interleave.
func (c *RedisGridCache) WithLock(id uuid.UUID, fn func() error) error {
	mutex := c.locker.NewMutex(gridKey(id) + ":solve_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	return fn()
}

func gridKey(id uuid.UUID) string {
	return gridKeyPrefix + id.String()
}
