package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-process Documents implementation used by tests and
// local development.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) List(ctx context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Update stages writes against a copy of the map and commits them only
// when fn succeeds.
func (m *Memory) Update(ctx context.Context, fn func(Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{base: m.data, staged: make(map[string][]byte)}
	if err := fn(tx); err != nil {
		return err
	}
	for k, v := range tx.staged {
		m.data[k] = v
	}
	return nil
}

type memoryTx struct {
	base   map[string][]byte
	staged map[string][]byte
}

func (t *memoryTx) Get(key string) ([]byte, error) {
	if v, ok := t.staged[key]; ok {
		return v, nil
	}
	v, ok := t.base[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (t *memoryTx) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	t.staged[key] = cp
	return nil
}
