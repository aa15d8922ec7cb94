package slicehash

import (
	"errors"
	"testing"

	sliceerrors "github.com/tamirms/slicehash/errors"
)

// newTestStrategy builds a strategy over the given slices with the default
// hash algorithm.
func newTestStrategy(t *testing.T, slices [][]byte) *sliceHashStrategy {
	t.Helper()
	hasher, err := newTupleHasher(AlgoXXH3)
	if err != nil {
		t.Fatalf("newTupleHasher failed: %v", err)
	}
	return newSliceHashStrategy(testLayout{}, slices, hasher)
}

// TestStrategyStructuralEquality verifies that hash and equality depend
// only on tuple bytes, not on slice identity or offset.
func TestStrategyStructuralEquality(t *testing.T) {
	left := &sliceBuilder{sliceIndex: 0}
	right := &sliceBuilder{sliceIndex: 1}

	// Same key bytes at different offsets in different slices.
	left.append([]byte("padding"))
	a := left.append([]byte("shared-key"))
	b := right.append([]byte("shared-key"))
	c := right.append([]byte("other-key"))

	s := newTestStrategy(t, [][]byte{left.data, right.data})

	if s.Hash(uint64(a)) != s.Hash(uint64(b)) {
		t.Error("identical tuple bytes hash differently across slices")
	}
	if !s.Equal(uint64(a), uint64(b)) {
		t.Error("identical tuple bytes compare unequal across slices")
	}
	if !s.Equal(uint64(a), uint64(a)) {
		t.Error("equality is not reflexive")
	}
	if s.Equal(uint64(a), uint64(c)) {
		t.Error("distinct tuple bytes compare equal")
	}
}

// TestStrategyLengthMatters verifies that a tuple that is a strict prefix
// of another compares unequal.
func TestStrategyLengthMatters(t *testing.T) {
	b := &sliceBuilder{sliceIndex: 0}
	short := b.append([]byte("abc"))
	long := b.append([]byte("abcdef"))

	s := newTestStrategy(t, [][]byte{b.data})
	if s.Equal(uint64(short), uint64(long)) {
		t.Error("prefix tuple compares equal to longer tuple")
	}
}

// TestStrategyLookupResolution verifies that lookup addresses resolve to
// the bound lookup slice and rebinding takes effect.
func TestStrategyLookupResolution(t *testing.T) {
	b := &sliceBuilder{sliceIndex: 0}
	built := b.append([]byte("needle"))

	s := newTestStrategy(t, [][]byte{b.data})

	s.setLookupSlice(encodeTuple([]byte("needle")))
	if !s.Equal(uint64(LookupAddress(0)), uint64(built)) {
		t.Error("lookup tuple with identical bytes compares unequal to built tuple")
	}

	s.setLookupSlice(encodeTuple([]byte("haystack")))
	if s.Equal(uint64(LookupAddress(0)), uint64(built)) {
		t.Error("rebinding the lookup slice did not take effect")
	}
}

// TestStrategyUnboundLookupPanics verifies the fail-fast contract for
// resolving a lookup address with no lookup slice bound.
func TestStrategyUnboundLookupPanics(t *testing.T) {
	s := newTestStrategy(t, nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("resolving a lookup address with no lookup slice bound did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, sliceerrors.ErrLookupSliceUnset) {
			t.Fatalf("panic value = %v, want ErrLookupSliceUnset", r)
		}
	}()
	s.Hash(uint64(LookupAddress(0)))
}

// TestHashAlgorithmsAgreeOnEquality verifies the hash/equality contract
// for every algorithm: equal tuple bytes hash equal.
func TestHashAlgorithmsAgreeOnEquality(t *testing.T) {
	rng := newTestRNG(t)
	keys := generateRandomKeys(rng, 100, 1, 64)

	for _, algo := range []HashAlgorithmID{AlgoXXH3, AlgoXXHash64, AlgoMurmur3} {
		t.Run(algo.String(), func(t *testing.T) {
			hasher, err := newTupleHasher(algo)
			if err != nil {
				t.Fatalf("newTupleHasher(%v) failed: %v", algo, err)
			}

			// The same key bytes laid out in two separate slices.
			left := &sliceBuilder{sliceIndex: 0}
			right := &sliceBuilder{sliceIndex: 1}
			var leftAddrs, rightAddrs []Address
			for _, key := range keys {
				leftAddrs = append(leftAddrs, left.append(key))
			}
			for _, key := range keys {
				rightAddrs = append(rightAddrs, right.append(key))
			}

			s := newSliceHashStrategy(testLayout{}, [][]byte{left.data, right.data}, hasher)
			for i := range keys {
				if s.Hash(uint64(leftAddrs[i])) != s.Hash(uint64(rightAddrs[i])) {
					t.Fatalf("key %d: equal bytes hash unequal under %v", i, algo)
				}
				if !s.Equal(uint64(leftAddrs[i]), uint64(rightAddrs[i])) {
					t.Fatalf("key %d: equal bytes compare unequal under %v", i, algo)
				}
			}
		})
	}
}

// TestUnknownAlgorithm verifies the dispatch error path.
func TestUnknownAlgorithm(t *testing.T) {
	_, err := newTupleHasher(HashAlgorithmID(999))
	if !errors.Is(err, sliceerrors.ErrUnknownAlgorithm) {
		t.Fatalf("newTupleHasher(999) error = %v, want ErrUnknownAlgorithm", err)
	}
	if got := HashAlgorithmID(999).String(); got != "unknown" {
		t.Errorf("HashAlgorithmID(999).String() = %q, want %q", got, "unknown")
	}
}
