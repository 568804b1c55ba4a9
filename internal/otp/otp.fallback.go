package otp

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FallbackStore composes the cache-backed primary with a local in-process
// fallback. Writes go to whichever backend is usable at the time; reads
// always consult the primary first (when reachable) and then the fallback,
// so a connectivity change between issue and verify is harmless. Deletes
// hit both backends.
type FallbackStore struct {
	primary ReachableStore
	local   *MemoryStore
	logger  *zap.Logger
}

func NewFallbackStore(primary ReachableStore, local *MemoryStore, logger *zap.Logger) *FallbackStore {
	return &FallbackStore{primary: primary, local: local, logger: logger}
}

func (s *FallbackStore) Set(ctx context.Context, identifier, payload string, ttl time.Duration) error {
	if s.primary.Reachable() {
		err := s.primary.Set(ctx, identifier, payload, ttl)
		if err == nil {
			return nil
		}
		s.logger.Warn("cache store write failed, using local fallback",
			zap.String("identifier", identifier), zap.Error(err))
	} else {
		s.logger.Warn("cache store unreachable, using local fallback",
			zap.String("identifier", identifier))
	}
	return s.local.Set(ctx, identifier, payload, ttl)
}

func (s *FallbackStore) Get(ctx context.Context, identifier string) (string, bool, error) {
	if s.primary.Reachable() {
		payload, ok, err := s.primary.Get(ctx, identifier)
		if err != nil {
			s.logger.Warn("cache store read failed, checking local fallback",
				zap.String("identifier", identifier), zap.Error(err))
		} else if ok {
			return payload, true, nil
		}
	}
	return s.local.Get(ctx, identifier)
}

// Delete removes the identifier from both backends. Deleting an absent key
// is a no-op, which covers records written to one side and found on the other.
func (s *FallbackStore) Delete(ctx context.Context, identifier string) error {
	if s.primary.Reachable() {
		if err := s.primary.Delete(ctx, identifier); err != nil {
			s.logger.Warn("cache store delete failed",
				zap.String("identifier", identifier), zap.Error(err))
		}
	}
	return s.local.Delete(ctx, identifier)
}

func (s *FallbackStore) Close() {
	s.local.Close()
}
