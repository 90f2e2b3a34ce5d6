package cmap

import (
	"sync"
	"testing"
)

func TestRWLockedInsertAndGet(t *testing.T) {
	m := NewRWLocked[string, int]()

	m.Insert("key1", 100)
	m.Insert("key2", 200)

	val, ok := m.Get("key1")
	if !ok || val != 100 {
		t.Errorf("Get(key1) = (%d, %v), want (100, true)", val, ok)
	}

	val, ok = m.Get("nonexistent")
	if ok {
		t.Errorf("Get(nonexistent) = (%d, %v), want (0, false)", val, ok)
	}
}

func TestRWLockedConcurrentReaders(t *testing.T) {
	m := NewRWLocked[uint64, uint64]()
	for i := uint64(0); i < 100; i++ {
		m.Insert(i, i*2)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := uint64(0); i < 100; i++ {
				val, ok := m.Get(i)
				if !ok || val != i*2 {
					t.Errorf("Get(%d) = (%d, %v), want (%d, true)", i, val, ok, i*2)
				}
			}
		}()
	}
	wg.Wait()
}

func TestRWLockedDelete(t *testing.T) {
	m := NewRWLocked[string, int]()

	m.Insert("key1", 100)
	m.Delete("key1")

	if _, ok := m.Get("key1"); ok {
		t.Error("key1 should not exist after deletion")
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0", m.Count())
	}
}
