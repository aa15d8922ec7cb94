package slicehash

import (
	"bytes"

	sliceerrors "github.com/tamirms/slicehash/errors"
)

// sliceHashStrategy computes hash and equality over packed addresses by
// resolving each to the bytes of the tuple it names. It implements
// addrmap.Strategy.
//
// All fields except lookupSlice are immutable and shared between clones.
// lookupSlice is the one mutable slot: it backs addresses carrying the
// reserved lookup slice index and must be rebound (setLookupSlice) before
// probe-side hashing. A strategy instance must not be shared across
// goroutines; Clone gives each concurrent user its own.
type sliceHashStrategy struct {
	layout TupleLayout
	slices [][]byte
	hash   tupleHashFunc

	lookupSlice []byte
}

func newSliceHashStrategy(layout TupleLayout, slices [][]byte, hash tupleHashFunc) *sliceHashStrategy {
	return &sliceHashStrategy{
		layout: layout,
		slices: slices,
		hash:   hash,
	}
}

// clone returns a strategy sharing the layout, slice set, and hash
// function but with its own unbound lookup slice slot.
func (s *sliceHashStrategy) clone() *sliceHashStrategy {
	return newSliceHashStrategy(s.layout, s.slices, s.hash)
}

func (s *sliceHashStrategy) setLookupSlice(slice []byte) {
	s.lookupSlice = slice
}

// tupleBytes resolves a packed address to the byte range of its tuple.
// Resolving a lookup address with no lookup slice bound is a caller
// contract violation and panics.
func (s *sliceHashStrategy) tupleBytes(addr Address) []byte {
	var slice []byte
	if addr.IsLookup() {
		if s.lookupSlice == nil {
			panic(sliceerrors.ErrLookupSliceUnset)
		}
		slice = s.lookupSlice
	} else {
		slice = s.slices[addr.SliceIndex()]
	}
	offset := int(addr.Offset())
	length := s.layout.Size(slice, offset)
	return slice[offset : offset+length]
}

// Hash returns a hash of the tuple bytes behind key. Addresses with
// byte-for-byte identical tuples hash identically, whichever slice or
// offset they come from.
func (s *sliceHashStrategy) Hash(key uint64) uint64 {
	return s.hash(s.tupleBytes(Address(key)))
}

// Equal reports whether the tuples behind a and b are byte-for-byte
// identical, lengths included.
func (s *sliceHashStrategy) Equal(a, b uint64) bool {
	return bytes.Equal(s.tupleBytes(Address(a)), s.tupleBytes(Address(b)))
}
