// Package errors defines all exported error sentinels for the slicehash library.
//
// This is the single source of truth for error values. Both the top-level
// slicehash package and internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Build errors
var (
	ErrNilLayout            = errors.New("slicehash: tuple layout is nil")
	ErrTooManyPositions     = errors.New("slicehash: position count exceeds maximum (2^31-1)")
	ErrReservedSliceIndex   = errors.New("slicehash: address uses the reserved lookup slice index")
	ErrSliceIndexOutOfRange = errors.New("slicehash: address slice index out of range")
	ErrInvalidLoadFactor    = errors.New("slicehash: load factor must be in (0, 1)")
	ErrUnknownAlgorithm     = errors.New("slicehash: unknown hash algorithm ID")
)

// Probe contract violations. These are programmer errors, not recoverable
// runtime conditions; the library panics with these values rather than
// returning them.
var (
	ErrLookupSliceUnset   = errors.New("slicehash: lookup slice not set before probe")
	ErrPositionOutOfRange = errors.New("slicehash: position out of range")
)

// Mapped slice errors
var (
	ErrEmptyMappedSlice = errors.New("slicehash: cannot map an empty file")
)
