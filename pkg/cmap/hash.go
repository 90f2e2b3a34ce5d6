package cmap

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/spaolacci/murmur3"
)

// Hasher maps a key to the 64-bit hash used for shard selection.
type Hasher[K comparable] func(K) uint64

// NewUint64Hasher returns a seeded MurmurHash3 hasher for uint64 keys.
// The seed is drawn at construction so independent maps do not share a
// shard layout.
func NewUint64Hasher() Hasher[uint64] {
	seed := rand.Uint32()
	return func(key uint64) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], key)
		return murmur3.Sum64WithSeed(buf[:], seed)
	}
}

// NewStringHasher returns a seeded MurmurHash3 hasher for string keys.
func NewStringHasher() Hasher[string] {
	seed := rand.Uint32()
	return func(key string) uint64 {
		return murmur3.Sum64WithSeed([]byte(key), seed)
	}
}

// newGenericHasher is the fallback for arbitrary comparable keys. It
// formats the key and runs it through maphash, trading speed for
// generality; hot paths should supply a typed hasher instead.
func newGenericHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		fmt.Fprintf(&h, "%v", key)
		return h.Sum64()
	}
}
