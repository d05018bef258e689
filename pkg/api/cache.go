package api

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/transito/transito/pkg/redis_client"
)

// ResultCache holds serialized plan responses keyed by origin:destination.
// The underlying graph snapshot never changes within a session, so a cached
// plan stays valid until it simply expires.
type ResultCache struct {
	cache *cache.Cache[string]
}

func NewResultCache(expiration time.Duration) *ResultCache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(expiration))

	return &ResultCache{
		cache: cache.New[string](redisStore),
	}
}

func (c *ResultCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	value, err := c.cache.Get(ctx, key)
	if err != nil {
		return "", false
	}

	return value, true
}

func (c *ResultCache) Set(ctx context.Context, key string, value string) {
	if c == nil {
		return
	}

	// Best effort, a failed cache write never fails the request.
	_ = c.cache.Set(ctx, key, value)
}
