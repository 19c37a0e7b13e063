package ports

// RandomSource is the only source of randomness used by scene generation.
// Implementations need not be safe for concurrent use.
type RandomSource interface {
	// Float32 returns a uniform value in [0, 1).
	Float32() float32
	Uint32() uint32
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// RandomSourceFactory turns a seed into a deterministic RandomSource.
type RandomSourceFactory interface {
	// Seed returns configured when set, otherwise a fresh seed.
	Seed(configured *uint64) uint64
	New(seed uint64) RandomSource
}
