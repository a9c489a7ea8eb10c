package prefs

import (
	"context"
	"sync"
)

// Store persists dashboard preferences. The dark-mode flag is the only
// preference today; it lives under a single fixed key.
type Store interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
	Close() error
}

// MemoryStore keeps preferences in process memory. It backs the server
// when Redis is unreachable at startup; the flag then lasts only as long
// as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	dark bool
}

// NewMemoryStore creates a memory-backed store seeded with the default.
func NewMemoryStore(defaultDark bool) *MemoryStore {
	return &MemoryStore{dark: defaultDark}
}

func (s *MemoryStore) DarkMode(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark, nil
}

func (s *MemoryStore) SetDarkMode(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = enabled
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
