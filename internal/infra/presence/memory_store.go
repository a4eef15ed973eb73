// Package presence tracks which users hold live real-time connections.
package presence

import (
	"context"
	"sync"

	"wrench/internal/domain/service"

	"github.com/google/uuid"
)

// memoryStore is an in-process PresenceStore. It is only correct for
// single-instance deployments; multi-instance deployments must use the Redis
// backend.
type memoryStore struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]map[string]struct{}
}

// NewMemoryStore creates an in-process presence store.
func NewMemoryStore() service.PresenceStore {
	return &memoryStore{
		conns: make(map[uuid.UUID]map[string]struct{}),
	}
}

func (s *memoryStore) Connect(_ context.Context, userID uuid.UUID, connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.conns[userID]
	if !ok {
		set = make(map[string]struct{})
		s.conns[userID] = set
	}
	set[connID] = struct{}{}

	return nil
}

func (s *memoryStore) Disconnect(_ context.Context, userID uuid.UUID, connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.conns[userID]
	if !ok {
		return nil
	}
	delete(set, connID)
	if len(set) == 0 {
		delete(s.conns, userID)
	}

	return nil
}

func (s *memoryStore) IsOnline(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.conns[userID]) > 0, nil
}
