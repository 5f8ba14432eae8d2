package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Store used in tests and as a substitute for the
// durable adapters without touching callers.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Save(_ context.Context, key string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := make([]byte, len(raw))
	copy(clone, raw)
	m.data[key] = clone
	return nil
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	clone := make([]byte, len(raw))
	copy(clone, raw)
	return clone, nil
}
