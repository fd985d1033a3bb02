package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/portfolio/internal/domain/contact"
)

// memoryLockStore keeps locks in process memory. Locks do not survive a
// restart, so it is meant for development and tests.
type memoryLockStore struct {
	mu     sync.RWMutex
	states map[string]contact.State
}

func NewMemoryLockStore() contact.LockStore {
	return &memoryLockStore{states: make(map[string]contact.State)}
}

func (s *memoryLockStore) Get(_ context.Context, key string) (contact.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[key], nil
}

func (s *memoryLockStore) Set(_ context.Context, key string, state contact.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == contact.NotSubmitted {
		delete(s.states, key)
		return nil
	}
	s.states[key] = state
	return nil
}
