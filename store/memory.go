package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the token in process memory only. Sessions backed by
// it do not survive a restart; intended for tests and explicitly
// ephemeral use.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements [TokenStore].
func (s *MemoryStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrTokenNotFound
	}
	return s.token, nil
}

// Save implements [TokenStore].
func (s *MemoryStore) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

// Clear implements [TokenStore].
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
