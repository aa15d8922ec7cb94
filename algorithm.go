package slicehash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	sliceerrors "github.com/tamirms/slicehash/errors"
)

// HashAlgorithmID identifies the hash function applied to tuple bytes.
//
// Every algorithm satisfies the structural-equality contract: the hash
// depends only on the tuple's bytes, never on which slice or offset they
// come from, so equal keys hash equal regardless of algorithm choice. The
// choice is fixed per index; clones inherit it.
type HashAlgorithmID uint16

const (
	// AlgoXXH3 uses xxHash3-64, the default.
	AlgoXXH3 HashAlgorithmID = 0

	// AlgoXXHash64 uses xxHash64.
	AlgoXXHash64 HashAlgorithmID = 1

	// AlgoMurmur3 uses Murmur3-64 (the low half of Murmur3-128).
	AlgoMurmur3 HashAlgorithmID = 2
)

// String returns the algorithm name.
func (a HashAlgorithmID) String() string {
	switch a {
	case AlgoXXH3:
		return "xxh3"
	case AlgoXXHash64:
		return "xxhash64"
	case AlgoMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// tupleHashFunc hashes a tuple's raw bytes to a uint64.
type tupleHashFunc func([]byte) uint64

// newTupleHasher returns the hash function for the given algorithm ID.
func newTupleHasher(id HashAlgorithmID) (tupleHashFunc, error) {
	switch id {
	case AlgoXXH3:
		return xxh3.Hash, nil
	case AlgoXXHash64:
		return xxhash.Sum64, nil
	case AlgoMurmur3:
		return murmur3.Sum64, nil
	}
	return nil, fmt.Errorf("%w: %d", sliceerrors.ErrUnknownAlgorithm, id)
}
