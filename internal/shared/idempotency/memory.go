// Package idempotency stores processed webhook event ids so redelivered
// notifications are handled once.
package idempotency

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local store. Expired entries are dropped lazily
// and on every sweepEvery-th write.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	writes  int
	now     func() time.Time
}

const sweepEvery = 256

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStore) MarkProcessed(_ context.Context, eventID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if exp, ok := s.entries[eventID]; ok && now.Before(exp) {
		return false, nil
	}
	s.entries[eventID] = now.Add(ttl)

	s.writes++
	if s.writes%sweepEvery == 0 {
		for id, exp := range s.entries {
			if !now.Before(exp) {
				delete(s.entries, id)
			}
		}
	}
	return true, nil
}

func (s *MemoryStore) Forget(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, eventID)
	return nil
}
