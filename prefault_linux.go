//go:build linux

package slicehash

import "golang.org/x/sys/unix"

// prefaultRegion asks the kernel to read ahead the mapped pages.
// Best-effort: ignore all errors.
func prefaultRegion(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
}
