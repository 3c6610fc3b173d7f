package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCacheClient struct holds the Redis client and context
type RedisCacheClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCacheClient initializes a cache client backed by Redis
func NewRedisCacheClient(ctx context.Context, client *redis.Client) *RedisCacheClient {
	return &RedisCacheClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with the given expiry
func (r *RedisCacheClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *RedisCacheClient) Get(key string) (string, error) {
	value, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, err
}

// Del removes a key from Redis
func (r *RedisCacheClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *RedisCacheClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
