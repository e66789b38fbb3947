// Package storage provides the persistence collaborator for ledgers: a
// durable key-value text store. Each ledger owns exactly one key and is
// its sole writer; every mutating ledger command overwrites the full
// value.
package storage

import (
	"context"
	"sync"
)

// Store is the key-value text store port. A missing key is not an
// error: Get reports it through the ok result.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore keeps values in process memory. Used for tests and as the
// zero-setup default backend.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
