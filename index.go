package slicehash

import (
	"fmt"
	"math"

	sliceerrors "github.com/tamirms/slicehash/errors"
	"github.com/tamirms/slicehash/internal/addrmap"
)

// NoPosition is the in-band "not found" result of Get and GetNextPosition.
const NoPosition = -1

// Index is a multimap from tuple key bytes to build-side positions.
//
// The index is effectively a Multimap<keyBytes, position>: an
// address-to-position map holding one entry per distinct key, plus a dense
// chain array linking the remaining positions sharing that key. Get
// returns the most recently inserted position for a key;
// GetNextPosition walks the chain back through earlier duplicates to the
// first insertion, then returns NoPosition.
//
// Thread Safety:
//   - The map contents, chain array, and backing slices are immutable
//     after New returns and are shared by all clones without locking.
//   - SetLookupSlice mutates per-index probe state, so a single Index
//     (and each Clone) must be confined to one goroutine.
//   - To probe concurrently, give each goroutine its own Clone.
type Index struct {
	strategy          *sliceHashStrategy
	addressToPosition *addrmap.Map
	positionLinks     []int32
}

// Stats holds index statistics.
type Stats struct {
	Positions     int
	DistinctKeys  int
	Slices        int
	TableCapacity int
}

// New builds an index over the tuples named by addresses, in order.
//
// layout recovers tuple lengths from their leading bytes, slices is the
// backing slice set the addresses point into, and addresses lists one
// packed address per build-side tuple; the address at index p defines
// position p. Neither slices nor the bytes they hold may be mutated after
// New returns.
//
// Duplicate keys overwrite the map entry and link the displaced position
// into the chain, so the map always names the newest position for a key
// and chains run backward through build order.
func New(layout TupleLayout, slices [][]byte, addresses []Address, opts ...Option) (*Index, error) {
	if layout == nil {
		return nil, sliceerrors.ErrNilLayout
	}
	if len(addresses) > math.MaxInt32 {
		return nil, sliceerrors.ErrTooManyPositions
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.loadFactor <= 0 || cfg.loadFactor >= 1 {
		return nil, sliceerrors.ErrInvalidLoadFactor
	}

	hasher, err := newTupleHasher(cfg.algorithm)
	if err != nil {
		return nil, err
	}

	for i, addr := range addresses {
		if addr.IsLookup() {
			return nil, fmt.Errorf("%w: address %d", sliceerrors.ErrReservedSliceIndex, i)
		}
		if int(addr.SliceIndex()) >= len(slices) {
			return nil, fmt.Errorf("%w: address %d names slice %d of %d",
				sliceerrors.ErrSliceIndexOutOfRange, i, addr.SliceIndex(), len(slices))
		}
	}

	strategy := newSliceHashStrategy(layout, slices, hasher)
	m := addrmap.New(len(addresses), cfg.loadFactor, strategy)

	positionLinks := make([]int32, len(addresses))
	for i := range positionLinks {
		positionLinks[i] = NoPosition
	}

	// Build addresses never carry the lookup index, so pre-hashing them
	// from several goroutines does not touch the mutable lookup slot.
	var hashes []uint64
	if cfg.workers > 1 && len(addresses) >= minParallelAddresses {
		hashes = prehashAddresses(strategy, addresses, cfg.workers)
	}

	// The insertion pass is sequential: chain links depend on the map
	// state left by every earlier position.
	for position, addr := range addresses {
		var oldPosition int32
		if hashes != nil {
			oldPosition = m.PutHashed(uint64(addr), hashes[position], int32(position))
		} else {
			oldPosition = m.Put(uint64(addr), int32(position))
		}
		if oldPosition >= 0 {
			// link the new position to the displaced one
			positionLinks[position] = oldPosition
		}
	}

	return &Index{
		strategy:          strategy,
		addressToPosition: m,
		positionLinks:     positionLinks,
	}, nil
}

// Clone returns an index for use by another goroutine. The clone shares
// the map contents, chain array, and backing slices with the receiver and
// differs only in its lookup slice slot, so cloning is O(1) and never
// re-runs the build.
func (idx *Index) Clone() *Index {
	strategy := idx.strategy.clone()
	return &Index{
		strategy:          strategy,
		addressToPosition: idx.addressToPosition.CloneWith(strategy),
		positionLinks:     idx.positionLinks,
	}
}

// SetLookupSlice binds the slice holding probe tuples. It must be called
// before Get whenever the probe data moves to a new slice, and must not be
// called concurrently with Get on the same index.
func (idx *Index) SetLookupSlice(slice []byte) {
	idx.strategy.setLookupSlice(slice)
}

// Get returns the most recently inserted position whose key bytes equal
// the probe tuple at cursor's offset within the bound lookup slice, or
// NoPosition if no build-side tuple has that key. Remaining duplicates are
// reached via GetNextPosition.
//
// Calling Get with no lookup slice bound panics with
// errors.ErrLookupSliceUnset.
func (idx *Index) Get(cursor ProbeCursor) int {
	return int(idx.addressToPosition.Get(uint64(LookupAddress(uint32(cursor.RawOffset())))))
}

// GetNextPosition returns the position inserted immediately before
// currentPosition under the same key, or NoPosition at the end of the
// chain. currentPosition must have been returned by Get or a prior
// GetNextPosition call; anything else panics with
// errors.ErrPositionOutOfRange.
func (idx *Index) GetNextPosition(currentPosition int) int {
	if currentPosition < 0 || currentPosition >= len(idx.positionLinks) {
		panic(fmt.Errorf("%w: %d with %d positions",
			sliceerrors.ErrPositionOutOfRange, currentPosition, len(idx.positionLinks)))
	}
	return int(idx.positionLinks[currentPosition])
}

// Positions returns the number of build-side tuples indexed.
func (idx *Index) Positions() int {
	return len(idx.positionLinks)
}

// Stats returns statistics for the index.
func (idx *Index) Stats() *Stats {
	return &Stats{
		Positions:     len(idx.positionLinks),
		DistinctKeys:  idx.addressToPosition.Size(),
		Slices:        len(idx.strategy.slices),
		TableCapacity: idx.addressToPosition.Capacity(),
	}
}
