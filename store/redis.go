package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the token in Redis, for shared or headless
// deployments where several workers resume the same workspace session.
// The key layout is "<prefix>:token:<name>".
type RedisStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisStore returns a Redis-backed store. Prefix defaults to "eone";
// name identifies the principal (typically the login email or a worker
// pool id). A non-zero ttl bounds how long an idle token survives — the
// platform expires tokens after 24h server-side regardless.
func NewRedisStore(client redis.UniversalClient, prefix, name string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "eone"
	}
	return &RedisStore{
		client: client,
		key:    prefix + ":token:" + name,
		ttl:    ttl,
	}
}

// Key returns the Redis key backing the store.
func (s *RedisStore) Key() string {
	return s.key
}

// Load implements [TokenStore].
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	if val == "" {
		return "", ErrTokenNotFound
	}
	return val, nil
}

// Save implements [TokenStore].
func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Clear implements [TokenStore].
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
