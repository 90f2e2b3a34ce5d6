package cmap

import "sync"

// RWLocked is a map guarded by a single reader/writer lock. Readers
// proceed concurrently with each other; any writer excludes all other
// access. It is the zero-sharding baseline the Sharded backend is
// measured against.
type RWLocked[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewRWLocked creates an empty single-lock map.
func NewRWLocked[K comparable, V any]() *RWLocked[K, V] {
	return &RWLocked[K, V]{
		items: make(map[K]V),
	}
}

// Insert stores a key-value pair, replacing any existing value.
func (m *RWLocked[K, V]) Insert(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Get retrieves a value by key. The value is copied out under the read
// lock; the lock is released before return.
func (m *RWLocked[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.items[key]
	return val, ok
}

// Keys returns a snapshot of all keys present when the read lock was
// held.
func (m *RWLocked[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Count returns the number of items.
func (m *RWLocked[K, V]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Delete removes a key.
func (m *RWLocked[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}
