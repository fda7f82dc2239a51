package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a cache key is absent.
var ErrCacheMiss = redis.Nil

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetCached retrieves a cached JSON payload. Returns ErrCacheMiss when
// the key is absent or expired.
func (c *Client) GetCached(ctx context.Context, key string) ([]byte, error) {
	return c.rdb.Get(ctx, fmt.Sprintf("cache:%s", key)).Bytes()
}

// SetCached stores a JSON payload with a TTL
func (c *Client) SetCached(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, fmt.Sprintf("cache:%s", key), payload, ttl).Err()
}

// InvalidateCached drops a cache key
func (c *Client) InvalidateCached(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, fmt.Sprintf("cache:%s", key)).Err()
}

// SetSession stores a session payload under a bearer token with a TTL.
func (c *Client) SetSession(ctx context.Context, token string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, fmt.Sprintf("session:%s", token), payload, ttl).Err()
}

// GetSession retrieves a session payload by bearer token. Returns
// ErrCacheMiss for unknown or expired tokens.
func (c *Client) GetSession(ctx context.Context, token string) ([]byte, error) {
	return c.rdb.Get(ctx, fmt.Sprintf("session:%s", token)).Bytes()
}

// ClearSession removes a session (logout, or invalidation on 401).
func (c *Client) ClearSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, fmt.Sprintf("session:%s", token)).Err()
}

// AcquireOrderLock acquires a short-lived lock serializing status
// transitions on a single order. Returns false when another transition
// holds the lock.
func (c *Client) AcquireOrderLock(ctx context.Context, orderID int64, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, fmt.Sprintf("lock:order:%d", orderID), "1", ttl).Result()
}

// ReleaseOrderLock releases a transition lock
func (c *Client) ReleaseOrderLock(ctx context.Context, orderID int64) error {
	return c.rdb.Del(ctx, fmt.Sprintf("lock:order:%d", orderID)).Err()
}
