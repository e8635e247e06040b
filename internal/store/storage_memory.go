package store

import (
	"context"
	"sync"
)

// MemoryKeyValueStorage is a process-local [KeyValueStorage]. Nothing
// survives a restart.
type MemoryKeyValueStorage struct {
	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

// NewMemoryKeyValueStorage returns an empty in-memory storage.
func NewMemoryKeyValueStorage() *MemoryKeyValueStorage {
	return &MemoryKeyValueStorage{items: make(map[string]string)}
}

func (s *MemoryKeyValueStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrStorageClosed
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryKeyValueStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStorageClosed
	}
	s.items[key] = value
	return nil
}

func (s *MemoryKeyValueStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStorageClosed
	}
	delete(s.items, key)
	return nil
}

func (s *MemoryKeyValueStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
