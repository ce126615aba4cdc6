// Package cache wraps a go-redis client for the string keys the wardrobe
// persists as opaque byte blobs.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/wardrobe/pkg/config"
)

const (
	poolSize     = 10
	minIdleConns = 2
	maxRetries   = 3
	dialTimeout  = 5 * time.Second
	ioTimeout    = 3 * time.Second
	poolTimeout  = 4 * time.Second
	pingTimeout  = 2 * time.Second
)

// RedisClient is a pooled connection to one Redis database.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient dials cfg.RedisURL and fails unless the server answers PING
// within two seconds.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	opts.PoolSize = poolSize
	opts.MinIdleConns = minIdleConns
	opts.MaxRetries = maxRetries
	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = ioTimeout
	opts.WriteTimeout = ioTimeout
	opts.PoolTimeout = poolTimeout

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisClient{client: rdb}, nil
}

// GetBytes returns the value stored at key. ok is false when the key does not exist.
func (r *RedisClient) GetBytes(ctx context.Context, key string) (data []byte, ok bool, err error) {
	data, err = r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

// SetBytes overwrites key with data. A zero ttl means the key never expires.
func (r *RedisClient) SetBytes(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping checks the Redis connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close shuts down the pool. Safe on a zero RedisClient.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}
