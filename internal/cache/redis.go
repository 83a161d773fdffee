package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores views in a shared Redis so several dashboard processes can
// reuse each other's work.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; ttl <= 0 stores keys without expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl < 0 {
		ttl = 0
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, val []byte) error {
	return r.client.Set(ctx, key, val, r.ttl).Err()
}

func (r *Redis) Close() error { return r.client.Close() }
