package repository

import (
	"context"
	"sync"
)

type MemoryStoreImpl struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func CreateNewMemoryStore() *MemoryStoreImpl {
	return &MemoryStoreImpl{data: map[string][]byte{}}
}

func (m *MemoryStoreImpl) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryStoreImpl) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStoreImpl) Close(ctx context.Context) error {
	return nil
}
