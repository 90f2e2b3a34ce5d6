package cmap

import (
	"fmt"
	"testing"
)

func TestNewSharded(t *testing.T) {
	m := NewSharded[string, int](DefaultShardCount)
	if m == nil {
		t.Fatal("NewSharded returned nil")
	}
	if len(m.shards) != DefaultShardCount {
		t.Errorf("shard count = %d, want %d", len(m.shards), DefaultShardCount)
	}
}

func TestNewShardedShardCounts(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, DefaultShardCount},  // invalid → default
		{-1, DefaultShardCount}, // invalid → default
		{3, DefaultShardCount},  // not power of 2 → default
		{1, 1},
		{2, 2},
		{4, 4},
		{16, 16},
		{64, 64},
		{256, 256},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("shards=%d", tt.input), func(t *testing.T) {
			m := NewSharded[string, int](tt.input)
			if m.ShardCount() != tt.expected {
				t.Errorf("NewSharded(%d) shard count = %d, want %d",
					tt.input, m.ShardCount(), tt.expected)
			}
		})
	}
}

func TestShardedUint64Hasher(t *testing.T) {
	m := NewShardedWithHasher[uint64, string](8, NewUint64Hasher())

	for i := uint64(0); i < 1000; i++ {
		m.Insert(i, "v")
	}

	if m.Count() != 1000 {
		t.Errorf("Count() = %d, want 1000", m.Count())
	}

	// Every shard should hold something for a 1000-key uniform keyspace.
	empty := 0
	for _, s := range m.shards {
		s.mu.RLock()
		if len(s.items) == 0 {
			empty++
		}
		s.mu.RUnlock()
	}
	if empty > 0 {
		t.Errorf("%d of %d shards empty after 1000 inserts", empty, len(m.shards))
	}
}

func TestShardedDelete(t *testing.T) {
	m := NewSharded[string, int](4)

	m.Insert("key1", 100)
	m.Delete("key1")

	if _, ok := m.Get("key1"); ok {
		t.Error("key1 should not exist after deletion")
	}

	// Delete of a missing key must not panic.
	m.Delete("nonexistent")
}
