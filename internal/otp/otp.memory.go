package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload string
	timer   *time.Timer
}

// MemoryStore is the single-process degraded backend. Entries are expired
// by a per-identifier timer; the timer is tied to the entry it was armed
// for, so an overwrite can never be deleted by a stale timer. Lookups must
// still check expiry themselves since cleanup is best-effort.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) Set(_ context.Context, identifier, payload string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if old, ok := s.entries[identifier]; ok {
		old.timer.Stop()
	}
	e := &memoryEntry{payload: payload}
	e.timer = time.AfterFunc(ttl, func() { s.evict(identifier, e) })
	s.entries[identifier] = e
	return nil
}

func (s *MemoryStore) Get(_ context.Context, identifier string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[identifier]
	if !ok {
		return "", false, nil
	}
	return e.payload, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[identifier]; ok {
		e.timer.Stop()
		delete(s.entries, identifier)
	}
	return nil
}

// Close stops all pending cleanup timers. The store stays readable so an
// in-flight verify can still finish.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, e := range s.entries {
		e.timer.Stop()
	}
}

// evict removes the entry only if it is still the one the timer was armed for.
func (s *MemoryStore) evict(identifier string, e *memoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.entries[identifier]; ok && cur == e {
		delete(s.entries, identifier)
	}
}
