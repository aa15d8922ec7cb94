package slicehash

// Address packs a slice index and a byte offset into one uint64 so the
// index can refer to tuples without holding pointers. The high 32 bits are
// the slice index, the low 32 bits the byte offset. Addresses are values:
// two addresses are interchangeable iff their bits are equal.
type Address uint64

// LookupSliceIndex is the reserved slice index denoting the ephemeral
// lookup slice bound via SetLookupSlice. EncodeAddress must never be called
// with it; probe-side addresses are built with LookupAddress instead.
const LookupSliceIndex = uint32(0xFFFFFFFF)

// EncodeAddress packs a backing slice index and a byte offset into an
// Address. sliceIndex must not be LookupSliceIndex; that value is reserved
// for probe-side addresses.
func EncodeAddress(sliceIndex, offset uint32) Address {
	return Address(uint64(sliceIndex)<<32 | uint64(offset))
}

// LookupAddress returns the probe-side address for the given offset within
// the currently bound lookup slice.
func LookupAddress(offset uint32) Address {
	return EncodeAddress(LookupSliceIndex, offset)
}

// SliceIndex returns the packed slice index.
func (a Address) SliceIndex() uint32 {
	return uint32(a >> 32)
}

// Offset returns the packed byte offset. The value is unsigned; it is safe
// to use directly for slice indexing without sign extension.
func (a Address) Offset() uint32 {
	return uint32(a)
}

// IsLookup reports whether the address refers to the ephemeral lookup
// slice rather than a backing slice.
func (a Address) IsLookup() bool {
	return a.SliceIndex() == LookupSliceIndex
}
