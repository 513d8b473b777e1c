package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Field names are stored literally to stay compatible with the existing
// dataset.
const (
	FieldName  = "nombre"
	FieldPhone = "telefono"
)

// ErrNotFound is returned by Get when no value is stored for the key.
var ErrNotFound = errors.New("profile: field not found")

// Store persists per-user profile fields as opaque strings.
type Store interface {
	Put(ctx context.Context, userID, field, value string) error
	Get(ctx context.Context, userID, field string) (string, error)
}

// RedisStore implements Store on top of a shared Redis client.
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore creates a Redis-backed profile store.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("profile: redis client cannot be nil")
	}
	return &RedisStore{redis: client}
}

// Put writes the value under {userID}:{field}. No TTL; overwrites silently.
func (s *RedisStore) Put(ctx context.Context, userID, field, value string) error {
	if err := s.redis.Set(ctx, profileKey(userID, field), value, 0).Err(); err != nil {
		return fmt.Errorf("profile: failed to write %s: %w", field, err)
	}
	return nil
}

// Get returns the stored value for {userID}:{field}, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, userID, field string) (string, error) {
	value, err := s.redis.Get(ctx, profileKey(userID, field)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("profile: failed to read %s: %w", field, err)
	}
	return value, nil
}

func profileKey(userID, field string) string {
	return fmt.Sprintf("%s:%s", userID, field)
}
