// Bench is a benchmarking tool for measuring slicehash build throughput,
// probe throughput, and chain-walk cost under duplication.
//
// Usage:
//
//	go run ./cmd/bench -tuples 10000000 -distinct 1000000 -workers 4 -algo xxh3
//
// Flags:
//
//	-tuples    Number of build-side tuples (default: 10,000,000)
//	-distinct  Number of distinct keys among them (default: 1,000,000)
//	-keylen    Key length in bytes (default: 16)
//	-workers   Number of pre-hash workers for the build (default: 1)
//	-probes    Number of probe operations (default: 5,000,000)
//	-algo      Hash algorithm: xxh3, xxhash64, or murmur3 (default: xxh3)
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/tamirms/slicehash"
)

// layout matches the tuple encoding used by this benchmark: one length
// byte followed by the key bytes.
var layout = slicehash.TupleLayoutFunc(func(slice []byte, offset int) int {
	return 1 + int(slice[offset])
})

type cursor struct {
	offset int
}

func (c cursor) RawOffset() int { return c.offset }

func parseAlgo(name string) (slicehash.HashAlgorithmID, error) {
	for _, algo := range []slicehash.HashAlgorithmID{
		slicehash.AlgoXXH3, slicehash.AlgoXXHash64, slicehash.AlgoMurmur3,
	} {
		if algo.String() == name {
			return algo, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

func main() {
	tuplesFlag := flag.Int("tuples", 10_000_000, "number of build-side tuples")
	distinctFlag := flag.Int("distinct", 1_000_000, "number of distinct keys")
	keyLenFlag := flag.Int("keylen", 16, "key length in bytes")
	workersFlag := flag.Int("workers", 1, "number of pre-hash workers")
	probesFlag := flag.Int("probes", 5_000_000, "number of probe operations")
	algoFlag := flag.String("algo", "xxh3", "hash algorithm: xxh3, xxhash64, or murmur3")
	flag.Parse()

	algo, err := parseAlgo(*algoFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	numTuples := *tuplesFlag
	numDistinct := *distinctFlag
	keyLen := *keyLenFlag

	fmt.Println("Generating build side...")
	rng := rand.New(rand.NewPCG(0x1234567890ABCDEF, 0xFEDCBA9876543210))
	distinct := make([][]byte, numDistinct)
	for i := range distinct {
		distinct[i] = make([]byte, keyLen)
		for j := range distinct[i] {
			distinct[i][j] = byte(rng.Uint32())
		}
	}

	data := make([]byte, 0, numTuples*(1+keyLen))
	addresses := make([]slicehash.Address, numTuples)
	drawn := make([]int, numTuples)
	for i := range addresses {
		k := rng.IntN(numDistinct)
		drawn[i] = k
		addresses[i] = slicehash.EncodeAddress(0, uint32(len(data)))
		data = append(data, byte(keyLen))
		data = append(data, distinct[k]...)
	}

	fmt.Printf("Building index over %d tuples (%d distinct keys, %d workers, %s)...\n",
		numTuples, numDistinct, *workersFlag, algo)
	buildStart := time.Now()
	idx, err := slicehash.New(layout, [][]byte{data}, addresses,
		slicehash.WithHashAlgorithm(algo),
		slicehash.WithWorkers(*workersFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	buildDuration := time.Since(buildStart)

	stats := idx.Stats()
	fmt.Printf("Build: %v (%.2f M tuples/s), %d distinct keys, table capacity %d\n",
		buildDuration.Round(time.Millisecond),
		float64(numTuples)/buildDuration.Seconds()/1e6,
		stats.DistinctKeys, stats.TableCapacity)

	// Probe with the keys that were actually drawn so every probe hits.
	probeSlices := make([][]byte, numDistinct)
	for i, key := range distinct {
		tuple := make([]byte, 0, 1+keyLen)
		tuple = append(tuple, byte(keyLen))
		probeSlices[i] = append(tuple, key...)
	}

	numProbes := *probesFlag
	fmt.Printf("Probing %d times...\n", numProbes)
	var matches uint64
	probeStart := time.Now()
	for i := 0; i < numProbes; i++ {
		idx.SetLookupSlice(probeSlices[drawn[i%numTuples]])
		for position := idx.Get(cursor{}); position != slicehash.NoPosition; position = idx.GetNextPosition(position) {
			matches++
		}
	}
	probeDuration := time.Since(probeStart)

	fmt.Printf("Probe: %v (%.2f M probes/s), %d matched positions\n",
		probeDuration.Round(time.Millisecond),
		float64(numProbes)/probeDuration.Seconds()/1e6,
		matches)
}
