package db

import "time"

// CacheClient defines the methods available on the snapshot cache backends
type CacheClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Ping() error
}
