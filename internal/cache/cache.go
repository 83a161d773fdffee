// Package cache provides the view cache backends: an in-process TTL map and
// a shared Redis store. Both satisfy dataset.ViewCache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores opaque encoded values by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	Close() error
}

// Options select and configure a backend.
type Options struct {
	Backend  string // memory, redis or none
	TTL      time.Duration
	RedisURL string
}

// New builds the configured backend. A "none" backend returns nil, nil.
func New(ctx context.Context, opt Options) (Cache, error) {
	switch opt.Backend {
	case "", "memory":
		return NewMemory(opt.TTL), nil
	case "none":
		return nil, nil
	case "redis":
		ropt, err := redis.ParseURL(opt.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(ropt)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return NewRedis(client, opt.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opt.Backend)
	}
}
