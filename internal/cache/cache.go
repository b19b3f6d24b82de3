// Package cache is a thin wrapper over the shared Redis client exposing
// the TTL-capable key-value operations the notification system relies on:
// get, set-with-ttl, ttl-query and pattern scan.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

// ErrMiss is returned when a key does not exist (or has expired).
var ErrMiss = errors.New("cache: key not found")

// Cache wraps the Redis client. All writes go through the retry strategy;
// reads are single-shot since the polling loop retries them on the next
// tick anyway.
type Cache struct {
	client   *redis.Client
	strategy retry.Strategy
}

func New(client *redis.Client, strategy retry.Strategy) *Cache {
	return &Cache{client: client, strategy: strategy}
}

// Set stores value under key with the given TTL. A non-positive TTL is
// rejected: every key in this system carries an expiry.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("cache: non-positive ttl %v for key %s", ttl, key)
	}

	return retry.Do(func() error {
		// the wrapper's own Set has no TTL parameter, go through the
		// embedded client
		return c.client.Client.Set(ctx, key, value, ttl).Err()
	}, c.strategy)
}

// Get returns the value stored under key, or ErrMiss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("cache: get %s: %w", key, err)
	}

	return val, nil
}

// TTL returns the remaining time to live of key. ErrMiss is returned for
// an absent key; a key without expiry reports zero.
func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, error) {
	d, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: ttl %s: %w", key, err)
	}

	// go-redis maps the Redis -2/-1 replies to negative durations.
	if d < 0 {
		if d == -1 {
			return 0, nil
		}
		return 0, ErrMiss
	}

	return d, nil
}

// Keys returns all keys matching pattern using an iterative SCAN, so a
// large keyspace does not block the server the way KEYS would.
func (c *Cache) Keys(ctx context.Context, pattern string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)

	for {
		batch, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("cache: scan %s: %w", pattern, err)
		}

		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return retry.Do(func() error {
		return c.client.Del(ctx, key).Err()
	}, c.strategy)
}
