package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "atlas:slot:"

// RedisBackend keeps every slot as a plain string key without expiration.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotNotFound
	}
	return data, err
}

func (r *RedisBackend) Put(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, redisKeyPrefix+key, data, 0).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}

// Close leaves the shared client open; its owner closes it.
func (r *RedisBackend) Close() error {
	return nil
}
