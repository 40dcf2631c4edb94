package helpers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit"
)

var errKeyNotFound = errors.New("key not found")

// MemoryCache - хранилище ключей идемпотентности в памяти процесса, без TTL
type MemoryCache struct {
	mu   sync.Mutex
	data map[string]any
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: map[string]any{}}
}

func (m *MemoryCache) SetNX(_ context.Context, key string, val any, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = val
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) ecache.Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return ecache.Value{AnyValue: ekit.AnyValue{Err: errKeyNotFound}}
	}
	return ecache.Value{AnyValue: ekit.AnyValue{Val: v}}
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
