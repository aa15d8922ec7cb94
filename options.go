package slicehash

const defaultLoadFactor = 0.75

// Option is a functional option for configuring index construction.
type Option func(*config)

type config struct {
	algorithm  HashAlgorithmID
	workers    int
	loadFactor float64
}

func defaultConfig() *config {
	return &config{
		algorithm:  AlgoXXH3,
		workers:    0, // Single-threaded build; use WithWorkers(n) to pre-hash in parallel
		loadFactor: defaultLoadFactor,
	}
}

// WithHashAlgorithm selects the hash function applied to tuple bytes.
func WithHashAlgorithm(id HashAlgorithmID) Option {
	return func(c *config) {
		c.algorithm = id
	}
}

// WithWorkers sets the number of goroutines used to pre-hash build
// addresses. The insertion pass itself stays sequential; only hashing is
// parallelized. Values below 2 leave the build single-threaded.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithLoadFactor sets the open-addressed table's load factor. Must be in
// (0, 1). Lower values trade memory for shorter probe sequences.
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}
