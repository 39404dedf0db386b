package credentials

import (
	"context"
	"sync"
)

// MemoryRepository keeps the slot in process memory. It backs the "memory"
// driver and tests.
type MemoryRepository struct {
	mu    sync.Mutex
	key   string
	value []byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.value == nil || r.key != key {
		return nil, nil
	}
	return append([]byte{}, r.value...), nil
}

func (r *MemoryRepository) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.key = key
	r.value = append([]byte{}, value...)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.key == key {
		r.key, r.value = "", nil
	}
	return nil
}
