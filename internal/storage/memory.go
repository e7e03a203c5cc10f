package storage

import (
	"context"
	"sync"
)

// MemorySlot keeps values in process memory. Values are copied in and out.
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// NewMemorySlot creates an empty MemorySlot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

// Writes returns how many Set calls have completed.
func (m *MemorySlot) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
