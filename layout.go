package slicehash

// TupleLayout describes the variable-length tuple encoding well enough to
// recover a tuple's byte length from its leading bytes.
//
// Size must be deterministic, must not read past the tuple's own bytes,
// and must be safe for concurrent calls: the index shares one layout
// across all clones.
type TupleLayout interface {
	// Size returns the byte length of the tuple whose encoding begins at
	// offset in slice.
	Size(slice []byte, offset int) int
}

// TupleLayoutFunc adapts a plain function to the TupleLayout interface.
type TupleLayoutFunc func(slice []byte, offset int) int

// Size calls f.
func (f TupleLayoutFunc) Size(slice []byte, offset int) int {
	return f(slice, offset)
}

// ProbeCursor supplies the byte offset of the probe tuple within whatever
// slice the caller has bound as the current lookup slice.
type ProbeCursor interface {
	RawOffset() int
}
