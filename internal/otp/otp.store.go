package otp

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rajat8876/VendorIQ2/pkg/cache"
)

const namespace = "otp"

// Store holds at most one live passcode payload per identifier. The payload
// is an opaque string; the manager does its own (de)serialization.
type Store interface {
	Set(ctx context.Context, identifier, payload string, ttl time.Duration) error
	Get(ctx context.Context, identifier string) (string, bool, error)
	Delete(ctx context.Context, identifier string) error
}

// ReachableStore is a Store whose backend can go away. Reachability is a
// property of the backend's lifecycle, not of individual calls.
type ReachableStore interface {
	Store
	Reachable() bool
}

type RedisStore struct {
	cache *cache.Cache
}

func NewRedisStore(c *cache.Cache) *RedisStore {
	return &RedisStore{cache: c}
}

func (s *RedisStore) Reachable() bool {
	return s.cache.Reachable()
}

func (s *RedisStore) Set(ctx context.Context, identifier, payload string, ttl time.Duration) error {
	return s.cache.Set(ctx, namespace, identifier, payload, ttl)
}

func (s *RedisStore) Get(ctx context.Context, identifier string) (string, bool, error) {
	val, err := s.cache.Get(ctx, namespace, identifier)
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, identifier string) error {
	return s.cache.Delete(ctx, namespace, identifier)
}
