package session

import (
	"context"
	"sync"
)

// MemoryStore is the default Store: a mutex-guarded map scoped to the
// process lifetime. Sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]string)}
}

func (s *MemoryStore) Put(_ context.Context, token, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = identity
	return nil
}

func (s *MemoryStore) Identity(_ context.Context, token string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.sessions[token]
	return id, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
