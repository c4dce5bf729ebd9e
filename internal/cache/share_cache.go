package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ShareCache maps public share tokens to the owning user id.
// A miss is reported as ok=false with a nil error.
type ShareCache interface {
	Get(ctx context.Context, hash string) (userID uuid.UUID, ok bool, err error)
	Set(ctx context.Context, hash string, userID uuid.UUID) error
	Delete(ctx context.Context, hash string) error
}

// Connect opens a Redis client and verifies it answers PING
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisShareCache stores token lookups in Redis under share:<hash>
type RedisShareCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ShareCache = (*RedisShareCache)(nil)

// NewRedisShareCache creates a cache whose entries expire after ttl
func NewRedisShareCache(client *redis.Client, ttl time.Duration) *RedisShareCache {
	return &RedisShareCache{client: client, ttl: ttl}
}

func shareKey(hash string) string {
	return fmt.Sprintf("share:%s", hash)
}

// Get returns the cached owner for hash
func (c *RedisShareCache) Get(ctx context.Context, hash string) (uuid.UUID, bool, error) {
	val, err := c.client.Get(ctx, shareKey(hash)).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		// unreadable entry, drop it and treat as a miss
		_ = c.client.Del(ctx, shareKey(hash)).Err()
		return uuid.Nil, false, nil
	}
	return userID, true, nil
}

// Set caches the owner for hash
func (c *RedisShareCache) Set(ctx context.Context, hash string, userID uuid.UUID) error {
	return c.client.Set(ctx, shareKey(hash), userID.String(), c.ttl).Err()
}

// Delete evicts hash
func (c *RedisShareCache) Delete(ctx context.Context, hash string) error {
	return c.client.Del(ctx, shareKey(hash)).Err()
}

// Close closes the Redis connection
func (c *RedisShareCache) Close() error {
	return c.client.Close()
}

// NoopShareCache always misses. Used when no Redis address is configured.
type NoopShareCache struct{}

var _ ShareCache = NoopShareCache{}

func (NoopShareCache) Get(context.Context, string) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}

func (NoopShareCache) Set(context.Context, string, uuid.UUID) error { return nil }

func (NoopShareCache) Delete(context.Context, string) error { return nil }
