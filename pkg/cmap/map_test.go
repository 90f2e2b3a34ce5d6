package cmap

import (
	"sync"
	"testing"
)

// backends returns a factory per backend so the contract tests run
// against both implementations.
func backends() map[string]Factory[uint64, uint64] {
	return map[string]Factory[uint64, uint64]{
		"sharded": ShardedFactory[uint64, uint64](16, NewUint64Hasher),
		"rwlock":  RWLockedFactory[uint64, uint64](),
	}
}

func TestInsertThenGet(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Insert(42, 99)

			val, ok := m.Get(42)
			if !ok || val != 99 {
				t.Errorf("Get(42) = (%d, %v), want (99, true)", val, ok)
			}
		})
	}
}

func TestInsertReplacesValue(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Insert(1, 10)
			m.Insert(1, 20)

			val, ok := m.Get(1)
			if !ok || val != 20 {
				t.Errorf("Get(1) = (%d, %v), want (20, true)", val, ok)
			}
			if n := len(m.Keys()); n != 1 {
				t.Errorf("Keys() length = %d after re-insert, want 1", n)
			}
		})
	}
}

func TestConcurrentDisjointInserts(t *testing.T) {
	const (
		goroutines   = 4
		perGoroutine = 2500
	)

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			m := factory()

			var wg sync.WaitGroup
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					base := uint64(g * perGoroutine)
					for i := uint64(0); i < perGoroutine; i++ {
						m.Insert(base+i, base+i)
					}
				}(g)
			}
			wg.Wait()

			keys := m.Keys()
			if len(keys) != goroutines*perGoroutine {
				t.Fatalf("Keys() length = %d, want %d", len(keys), goroutines*perGoroutine)
			}

			seen := make(map[uint64]bool, len(keys))
			for _, k := range keys {
				if seen[k] {
					t.Fatalf("duplicate key %d in Keys()", k)
				}
				seen[k] = true
			}
			for i := uint64(0); i < goroutines*perGoroutine; i++ {
				if !seen[i] {
					t.Fatalf("key %d missing from Keys()", i)
				}
			}
		})
	}
}

func TestKeysIsSnapshot(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Insert(1, 1)

			keys := m.Keys()
			m.Insert(2, 2)

			if len(keys) != 1 {
				t.Errorf("snapshot length = %d after later insert, want 1", len(keys))
			}
		})
	}
}

func TestFactoriesProduceIndependentMaps(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			a := factory()
			b := factory()
			a.Insert(7, 7)

			if _, ok := b.Get(7); ok {
				t.Error("insert into one instance leaked into another")
			}
		})
	}
}
