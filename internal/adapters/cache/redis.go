package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventlisting/internal/domain"
)

const keyPrefix = "eventlisting:plugin:"

// store is the subset of redis.Cmdable the cache needs.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type redisCache struct {
	client store
}

// NewRedisCache returns a PluginCache backed by Redis.
func NewRedisCache(client store) domain.PluginCache {
	return &redisCache{client: client}
}

// Connect opens a Redis client from a redis:// URL and checks it with PING.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores value for ttl. A non-positive ttl means the entry is not cached at all.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

type noopCache struct{}

// NewNoopCache returns a PluginCache that never stores anything.
func NewNoopCache() domain.PluginCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
