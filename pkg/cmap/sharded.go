package cmap

import "sync"

// DefaultShardCount is the shard count used when an invalid count is
// requested.
const DefaultShardCount = 16

// Sharded is a concurrent map partitioned across independently locked
// shards. The shard count is fixed at construction and must be a power
// of two so shard selection is a single mask of the key hash.
type Sharded[K comparable, V any] struct {
	shards    []*shard[K, V]
	shardMask uint64
	hash      Hasher[K]
}

type shard[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewSharded creates a sharded map with a generic key hasher.
// shardCount must be a power of two; invalid counts fall back to
// DefaultShardCount.
func NewSharded[K comparable, V any](shardCount int) *Sharded[K, V] {
	return NewShardedWithHasher[K, V](shardCount, newGenericHasher[K]())
}

// NewShardedWithHasher creates a sharded map using the supplied hasher
// for shard selection.
func NewShardedWithHasher[K comparable, V any](shardCount int, hash Hasher[K]) *Sharded[K, V] {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		shardCount = DefaultShardCount
	}

	m := &Sharded[K, V]{
		shards:    make([]*shard[K, V], shardCount),
		shardMask: uint64(shardCount - 1),
		hash:      hash,
	}

	for i := 0; i < shardCount; i++ {
		m.shards[i] = &shard[K, V]{
			items: make(map[K]V),
		}
	}

	return m
}

func (m *Sharded[K, V]) getShard(key K) *shard[K, V] {
	return m.shards[m.hash(key)&m.shardMask]
}

// Insert stores a key-value pair, replacing any existing value.
func (m *Sharded[K, V]) Insert(key K, value V) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.items[key] = value
}

// Get retrieves a value by key.
func (m *Sharded[K, V]) Get(key K) (V, bool) {
	shard := m.getShard(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	val, ok := shard.items[key]
	return val, ok
}

// Keys returns a snapshot of all keys. Shard locks are taken one at a
// time, so the snapshot is not a consistent point-in-time view across
// shards.
func (m *Sharded[K, V]) Keys() []K {
	keys := make([]K, 0, m.Count())
	for _, shard := range m.shards {
		shard.mu.RLock()
		for k := range shard.items {
			keys = append(keys, k)
		}
		shard.mu.RUnlock()
	}
	return keys
}

// Count returns the total number of items across all shards.
func (m *Sharded[K, V]) Count() int {
	count := 0
	for _, shard := range m.shards {
		shard.mu.RLock()
		count += len(shard.items)
		shard.mu.RUnlock()
	}
	return count
}

// Delete removes a key.
func (m *Sharded[K, V]) Delete(key K) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	delete(shard.items, key)
}

// ShardCount returns the number of shards.
func (m *Sharded[K, V]) ShardCount() int {
	return len(m.shards)
}
