package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 15 * time.Minute

// ResponseCache stores rendered JSON responses keyed by request URI.
// Key format: cache:<request uri>
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a ResponseCache wrapping the given Redis client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get returns the cached response body for key, with found=false on a miss.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores a response body under key; the entry expires after the TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, body []byte) error {
	return c.client.Set(ctx, c.key(key), body, c.ttl).Err()
}

func (c *ResponseCache) key(k string) string {
	return "cache:" + k
}
