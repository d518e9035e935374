// Package kv holds the key-value backends of the durable store.
package kv

import (
	"context"
	"sync"

	"tasktracker/internal/core/ports"
)

// MemoryStore keeps everything in a map. Data does not survive the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

var (
	_ ports.KVStore = (*MemoryStore)(nil)
	_ ports.Pinger  = (*MemoryStore)(nil)
)
