package slicehash

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// testLayout is a self-describing variable-length tuple encoding used
// throughout the tests: one length byte followed by that many key bytes.
type testLayout struct{}

func (testLayout) Size(slice []byte, offset int) int {
	return 1 + int(slice[offset])
}

// sliceBuilder accumulates tuples into a single backing slice, returning
// the packed address of each appended tuple.
type sliceBuilder struct {
	sliceIndex uint32
	data       []byte
}

func (b *sliceBuilder) append(key []byte) Address {
	offset := uint32(len(b.data))
	b.data = append(b.data, byte(len(key)))
	b.data = append(b.data, key...)
	return EncodeAddress(b.sliceIndex, offset)
}

// encodeTuple returns a standalone slice holding just the given key as a
// tuple, for use as a probe-side lookup slice.
func encodeTuple(key []byte) []byte {
	tuple := make([]byte, 0, 1+len(key))
	tuple = append(tuple, byte(len(key)))
	return append(tuple, key...)
}

// testCursor is a fixed-offset ProbeCursor.
type testCursor struct {
	offset int
}

func (c testCursor) RawOffset() int {
	return c.offset
}

// probe binds a single-tuple lookup slice holding key and performs one Get.
func probe(idx *Index, key []byte) int {
	idx.SetLookupSlice(encodeTuple(key))
	return idx.Get(testCursor{offset: 0})
}

// buildIndex builds an index over one slice holding the given keys, in
// order, so key i lands at position i.
func buildIndex(t testing.TB, keys [][]byte, opts ...Option) *Index {
	t.Helper()
	b := &sliceBuilder{sliceIndex: 0}
	addresses := make([]Address, len(keys))
	for i, key := range keys {
		addresses[i] = b.append(key)
	}
	idx, err := New(testLayout{}, [][]byte{b.data}, addresses, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return idx
}

// collectChain returns the positions visited by probing key and walking
// the chain to its end.
func collectChain(idx *Index, key []byte) []int {
	var positions []int
	for position := probe(idx, key); position != NoPosition; position = idx.GetNextPosition(position) {
		positions = append(positions, position)
	}
	return positions
}

// generateRandomKeys creates n deterministic pseudo-random keys with
// lengths in [minLen, maxLen].
func generateRandomKeys(rng *rand.Rand, n, minLen, maxLen int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = make([]byte, minLen+rng.IntN(maxLen-minLen+1))
		for j := range keys[i] {
			keys[i][j] = byte(rng.Uint32())
		}
	}
	return keys
}

func equalIntSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
