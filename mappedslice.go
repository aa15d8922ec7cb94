package slicehash

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	sliceerrors "github.com/tamirms/slicehash/errors"
)

// MappedSlice is a backing slice memory-mapped from a file, for build
// sides that were spilled to disk. The mapping is read-only; the bytes
// satisfy the immutable-after-build requirement as long as no other
// process rewrites the file.
type MappedSlice struct {
	mmap mmap.MMap
	data []byte
}

// MapSlice opens path and memory-maps it as a backing slice.
// The file descriptor is closed before returning; per POSIX mmap(2) the
// mapping survives it.
func MapSlice(path string) (*MappedSlice, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open slice file: %w", err)
	}
	defer file.Close()
	return MapSliceFile(file)
}

// MapSliceFile memory-maps f as a backing slice. The caller is responsible
// for closing f, and may do so as soon as MapSliceFile returns.
func MapSliceFile(f *os.File) (*MappedSlice, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat slice file: %w", err)
	}
	if stat.Size() == 0 {
		return nil, sliceerrors.ErrEmptyMappedSlice
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap slice file: %w", err)
	}

	return &MappedSlice{
		mmap: mm,
		data: []byte(mm),
	}, nil
}

// Bytes returns the mapped bytes. The slice is backed by the mapping and
// becomes invalid after Close.
func (s *MappedSlice) Bytes() []byte {
	return s.data
}

// Len returns the mapped length in bytes.
func (s *MappedSlice) Len() int {
	return len(s.data)
}

// Prefault asks the kernel to fault in the mapped pages ahead of the
// build's first pass over them. Best-effort; a no-op where unsupported.
func (s *MappedSlice) Prefault() {
	prefaultRegion(s.data)
}

// Close unmaps the slice. No address built over it may be resolved
// afterward.
func (s *MappedSlice) Close() error {
	if s.mmap == nil {
		return nil
	}
	err := s.mmap.Unmap()
	s.mmap = nil
	s.data = nil
	return err
}
