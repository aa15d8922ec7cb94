// Package addrmap implements an open-addressed map from packed 64-bit
// addresses to 32-bit positions with a caller-supplied hash/equality
// strategy.
//
// The map exists because the built-in Go map hashes key identity: two
// different packed addresses whose tuples hold the same bytes must collide
// here, and only the strategy can see the bytes behind an address. The
// design follows the classic open-addressed custom-hash map: a power-of-two
// key array probed linearly, a parallel value array, and -1 as the "no
// entry" value.
package addrmap

import (
	"github.com/tamirms/slicehash/internal/bits"
)

// NoValue is returned by Get for absent keys and by Put when the key was
// not previously present. Stored values must therefore be >= 0.
const NoValue = int32(-1)

// Strategy supplies hash and equality over packed 64-bit keys. Two keys
// that are Equal must Hash identically.
//
// Hash and Equal may be called concurrently with themselves for read-only
// maps; implementations carrying mutable probe state must not be shared
// across goroutines.
type Strategy interface {
	Hash(key uint64) uint64
	Equal(a, b uint64) bool
}

// Map is an open-addressed uint64 -> int32 map.
//
// A Map is built by one goroutine and is read-only afterward. CloneWith
// shares the key/value arrays between clones, so Put must never be called
// on a map that has been cloned.
type Map struct {
	strategy Strategy

	keys   []uint64
	values []int32

	mask    uint64
	size    int
	maxFill int

	loadFactor float64
}

// New creates a map presized for expected entries at the given load factor.
// Presizing to the final entry count avoids any rehash during a build pass.
func New(expected int, loadFactor float64, strategy Strategy) *Map {
	capacity := bits.TableSize(expected, loadFactor)
	m := &Map{
		strategy:   strategy,
		loadFactor: loadFactor,
	}
	m.alloc(capacity)
	return m
}

func (m *Map) alloc(capacity int) {
	m.keys = make([]uint64, capacity)
	m.values = make([]int32, capacity)
	for i := range m.values {
		m.values[i] = NoValue
	}
	m.mask = uint64(capacity - 1)
	m.maxFill = int(float64(capacity) * m.loadFactor)
}

// find locates the slot for key: either the slot holding an equal key
// (found=true) or the empty slot where it would be inserted. hash must be
// strategy.Hash(key).
func (m *Map) find(key, hash uint64) (slot uint64, found bool) {
	slot = bits.Mix64(hash) & m.mask
	for m.values[slot] != NoValue {
		if m.strategy.Equal(m.keys[slot], key) {
			return slot, true
		}
		slot = (slot + 1) & m.mask
	}
	return slot, false
}

// Get returns the value stored under key, or NoValue if absent.
func (m *Map) Get(key uint64) int32 {
	return m.GetHashed(key, m.strategy.Hash(key))
}

// GetHashed is Get with a precomputed strategy hash of key.
func (m *Map) GetHashed(key, hash uint64) int32 {
	slot, found := m.find(key, hash)
	if !found {
		return NoValue
	}
	return m.values[slot]
}

// Put inserts or overwrites the value stored under key and returns the
// previous value, or NoValue if the key was absent.
func (m *Map) Put(key uint64, value int32) int32 {
	return m.PutHashed(key, m.strategy.Hash(key), value)
}

// PutHashed is Put with a precomputed strategy hash of key.
func (m *Map) PutHashed(key, hash uint64, value int32) int32 {
	slot, found := m.find(key, hash)
	if found {
		old := m.values[slot]
		m.values[slot] = value
		return old
	}
	m.keys[slot] = key
	m.values[slot] = value
	m.size++
	if m.size > m.maxFill {
		m.rehash(len(m.keys) * 2)
	}
	return NoValue
}

// rehash migrates all entries into a table of the given capacity.
// Only reachable when a caller under-declared expected at New time.
func (m *Map) rehash(capacity int) {
	oldKeys, oldValues := m.keys, m.values
	m.alloc(capacity)
	for i, v := range oldValues {
		if v == NoValue {
			continue
		}
		key := oldKeys[i]
		slot, _ := m.find(key, m.strategy.Hash(key))
		m.keys[slot] = key
		m.values[slot] = v
	}
}

// Size returns the number of distinct keys stored.
func (m *Map) Size() int {
	return m.size
}

// Capacity returns the current slot count of the table.
func (m *Map) Capacity() int {
	return len(m.keys)
}

// CloneWith returns a map sharing this map's key/value arrays but answering
// probes through the given strategy. The receiver and the clone must both
// be treated as read-only from this point on.
func (m *Map) CloneWith(strategy Strategy) *Map {
	clone := *m
	clone.strategy = strategy
	return &clone
}
