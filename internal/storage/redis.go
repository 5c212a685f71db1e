package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"orchid/internal/models"
)

// RedisBackend keeps the blob as a JSON string under StoreKey in a Redis
// reachable over the wire protocol (REDIS_URL).
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(url string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.MaxRetries = 3
	return &RedisBackend{client: redis.NewClient(opts)}, nil
}

func (b *RedisBackend) Load(ctx context.Context) (*models.DataStore, error) {
	raw, err := b.client.Get(ctx, StoreKey).Result()
	if errors.Is(err, redis.Nil) {
		return models.DefaultStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var data models.DataStore
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("parse stored blob: %w", err)
	}
	return &data, nil
}

func (b *RedisBackend) Save(ctx context.Context, data *models.DataStore) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := b.client.Set(ctx, StoreKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
