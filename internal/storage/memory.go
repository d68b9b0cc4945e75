package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in a process-local map. It backs tests and any
// session that does not need persistence across restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	value, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.blobs[key] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
