// Package redis contains insights.Cache implementation backed by redis.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cadencehq/cadence/internal/insights"
)

const (
	keyPrefix = "cadence:ai:"

	entryField = "entry"
	hitsField  = "hits"
)

// Cache is a redis backed response cache.
// Every entry is a hash holding the encoded entry and its hit counter.
type Cache struct {
	c *redis.Client
}

// New returns new instance of Cache.
func New(c *redis.Client) *Cache {
	return &Cache{c: c}
}

// Connect parses url and connects to redis.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		c.Close() // nolint: errcheck
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return c, nil
}

// Ping checks connection to redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.c.Ping(ctx).Err()
}

// Get returns cached entry and increments its hit counter.
func (c *Cache) Get(ctx context.Context, key string) (*insights.CacheEntry, error) {
	key = keyPrefix + key

	var (
		entry *redis.StringCmd
		hits  *redis.IntCmd
	)

	_, err := c.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		entry = p.HGet(ctx, key, entryField)
		hits = p.HIncrBy(ctx, key, hitsField, 1)
		return nil
	})
	if err == redis.Nil {
		// HIncrBy on a missing key creates it, drop the orphan.
		c.c.Del(ctx, key)
		return nil, insights.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var e insights.CacheEntry
	if err := json.Unmarshal([]byte(entry.Val()), &e); err != nil {
		c.c.Del(ctx, key)
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}
	e.HitCount = hits.Val()

	return &e, nil
}

// Set stores entry with ttl, hit counter is reset.
func (c *Cache) Set(ctx context.Context, key string, e *insights.CacheEntry, ttl time.Duration) error {
	key = keyPrefix + key

	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err := c.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, entryField, b, hitsField, 0)
		p.Expire(ctx, key, ttl)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to set entry: %w", err)
	}

	return nil
}
