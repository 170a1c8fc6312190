package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
)

// Redis is a Store backed by a Redis instance.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis using the given configuration and verifies
// the connection with a ping.
func NewRedis(ctx context.Context, cfg *config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client}, nil
}

// NewRedisWithClient wraps an existing client. Used by tests.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
