// Package slicehash implements a multimap hash index over tuples stored in
// contiguous byte slices, as used on the build side of a hash join.
//
// The index maps the key bytes of each build-side tuple to its position
// (its 0-based rank in build order). Tuples are identified by packed
// addresses: a single uint64 encoding a slice index and a byte offset, so
// the index never holds a per-entry pointer. Duplicate keys are linked
// through a dense chain array rather than per-bucket lists.
//
// # Basic Usage
//
// Building an index:
//
//	idx, err := slicehash.New(layout, slices, addresses)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Probing:
//
//	idx.SetLookupSlice(probeSlice)
//	position := idx.Get(cursor)
//	for position != slicehash.NoPosition {
//	    // ... emit the join row for position ...
//	    position = idx.GetNextPosition(position)
//	}
//
// # Concurrency
//
// The built index is immutable except for one mutable slot: the lookup
// slice bound by SetLookupSlice. An Index must therefore be confined to a
// single goroutine. To probe from several goroutines, give each its own
// Clone; clones share the map contents and chain array and only duplicate
// the small mutable probe state.
//
// # Package Structure
//
//   - Public API: index.go (New, Get, GetNextPosition, Clone), address.go
//   - Collaborator interfaces: layout.go (TupleLayout, ProbeCursor)
//   - Hash dispatch: algorithm.go (HashAlgorithmID), strategy.go
//   - Configuration: options.go (Option, With* functions)
//   - Mapped slices: mappedslice.go, prefault_*.go (OS-specific)
//   - Internals: internal/addrmap (open-addressed map), internal/bits
package slicehash
