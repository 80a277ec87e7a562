package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

// MemorySessionRepository keeps session flags in process memory.
type MemorySessionRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySessionRepository constructs an empty session store.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{values: make(map[string]string)}
}

// Put stores value under key.
func (r *MemorySessionRepository) Put(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// Get returns the value under key or ErrSessionNotFound.
func (r *MemorySessionRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	if !ok {
		return "", appErrors.ErrSessionNotFound
	}
	return value, nil
}

// Delete removes key. Missing keys are not an error.
func (r *MemorySessionRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// RedisSessionRepository keeps session flags in Redis without expiry.
type RedisSessionRepository struct {
	client redis.UniversalClient
}

// NewRedisSessionRepository constructs a Redis-backed session store.
func NewRedisSessionRepository(client redis.UniversalClient) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Put stores value under key.
func (r *RedisSessionRepository) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Get returns the value under key or ErrSessionNotFound.
func (r *RedisSessionRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", appErrors.ErrSessionNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Delete removes key. Missing keys are not an error.
func (r *RedisSessionRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}
