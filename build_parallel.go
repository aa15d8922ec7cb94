package slicehash

import (
	"golang.org/x/sync/errgroup"
)

// minParallelAddresses is the build size below which the worker pool
// overhead exceeds the hashing work and the build stays single-threaded.
const minParallelAddresses = 4096

// prehashAddresses computes the strategy hash of every build address using
// a bounded worker pool. Hashing is the expensive part of the build (it
// reads every tuple's bytes); the order-dependent insertion pass that
// follows consumes the precomputed hashes sequentially.
func prehashAddresses(strategy *sliceHashStrategy, addresses []Address, workers int) []uint64 {
	hashes := make([]uint64, len(addresses))

	chunk := (len(addresses) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(addresses); start += chunk {
		end := min(start+chunk, len(addresses))
		g.Go(func() error {
			for i := start; i < end; i++ {
				hashes[i] = strategy.Hash(uint64(addresses[i]))
			}
			return nil
		})
	}
	// Workers only hash; they cannot fail. Wait is the completion barrier.
	_ = g.Wait()

	return hashes
}
