package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores each key as a plain redis string.
type RedisSlot struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSlot wraps client; prefix is prepended to every key
func NewRedisSlot(client redis.UniversalClient, prefix string) *RedisSlot {
	return &RedisSlot{client: client, prefix: prefix}
}

func (r *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read redis key %q: %w", r.prefix+key, err)
	}
	return data, nil
}

func (r *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write redis key %q: %w", r.prefix+key, err)
	}
	return nil
}
