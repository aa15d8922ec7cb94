// Package bits provides low-level hashing and table sizing primitives.
package bits

import "math/bits"

// Mix64 applies the splitmix64 finalizer to x.
// The finalizer is a bijection on uint64 that avalanches all input bits,
// so masking the result to pick an open-addressing slot stays uniform even
// when the input hash has weak low bits.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// TableSize returns the smallest power of two capacity that keeps an
// open-addressed table holding expected entries at or below loadFactor.
// The result is at least 2 so a mask-based probe always has an empty slot
// to terminate on.
func TableSize(expected int, loadFactor float64) int {
	if expected < 0 {
		expected = 0
	}
	need := uint64(float64(expected)/loadFactor) + 1
	if need < 2 {
		return 2
	}
	return 1 << (64 - bits.LeadingZeros64(need-1))
}
