//go:build !linux

package slicehash

// prefaultRegion is a no-op on non-Linux platforms.
func prefaultRegion(data []byte) {
}
