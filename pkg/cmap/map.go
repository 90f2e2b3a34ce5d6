package cmap

// Map is the contract shared by all concurrent map backends.
//
// Get returns the value by copy rather than a lock-scoped reference.
// Holding a shard or read lock past the call boundary would leak the
// critical section to the caller, so the copy is the price of the
// contract in a garbage-collected runtime.
type Map[K comparable, V any] interface {
	// Insert stores the value under key, replacing any existing value.
	Insert(key K, value V)

	// Get retrieves a value by key.
	Get(key K) (V, bool)

	// Keys returns a fresh slice of all keys present at the moment of
	// the call. It is a snapshot copy, not a live view, and carries no
	// ordering guarantee.
	Keys() []K
}

// Factory constructs an independent Map instance. Drivers that need
// several maps of the same configuration take a Factory instead of a
// single instance.
type Factory[K comparable, V any] func() Map[K, V]

// ShardedFactory returns a Factory producing Sharded maps with the
// given shard count. newHasher is called once per instance, so every
// map gets its own hash seed.
func ShardedFactory[K comparable, V any](shardCount int, newHasher func() Hasher[K]) Factory[K, V] {
	return func() Map[K, V] {
		return NewShardedWithHasher[K, V](shardCount, newHasher())
	}
}

// RWLockedFactory returns a Factory producing single-lock maps.
func RWLockedFactory[K comparable, V any]() Factory[K, V] {
	return func() Map[K, V] {
		return NewRWLocked[K, V]()
	}
}
