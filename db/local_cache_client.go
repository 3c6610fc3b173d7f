package db

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LocalCacheClient is the in-process cache backend. It is the default
// outside of prod and doubles as the test backend.
type LocalCacheClient struct {
	cache *gocache.Cache
}

// NewLocalCacheClient initializes a new LocalCacheClient.
func NewLocalCacheClient() *LocalCacheClient {
	return &LocalCacheClient{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Set stores a key-value pair with the given expiry. A zero ttl keeps
// the entry until it is deleted.
func (c *LocalCacheClient) Set(key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// Get retrieves a value for a given key.
func (c *LocalCacheClient) Get(key string) (string, error) {
	value, exists := c.cache.Get(key)
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value.(string), nil
}

// Del removes a key.
func (c *LocalCacheClient) Del(key string) error {
	c.cache.Delete(key)
	return nil
}

// Ping always succeeds for the in-process backend.
func (c *LocalCacheClient) Ping() error {
	return nil
}
