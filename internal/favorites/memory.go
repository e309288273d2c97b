package favorites

import (
	"context"
	"sync"
)

// Compile-time interface check.
var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps values in process memory. Safe for concurrent access.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Load returns a copy of the stored value, or nil when key is unset.
func (b *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Save stores a copy of data under key.
func (b *MemoryBackend) Save(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), data...)
	return nil
}
