package wfc

import (
	"math/bits"
	"math/rand/v2"
)

// Rand is the abstract randomness source the observer and the generator
// draw from: a stream of uniformly distributed integers in any requested
// half-open range [0, n). Generate is handed one explicitly rather than
// reading a package-global default, which is what makes a fixed seed
// reproduce an exact output deterministically and testable in isolation.
type Rand interface {
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// SeededRand is a deterministic Rand: the same seed produces the same
// sequence of draws, which is what lets Generate reproduce an exact output
// grid across runs. It reuses the unrolled xxhash64 construction this
// package's noise generators build on, driven by an internal counter
// instead of a caller-supplied coordinate, so each call advances the
// stream.
type SeededRand struct {
	seed    uint64
	counter uint64
}

// NewSeededRand returns a SeededRand seeded from seed.
func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{seed: seed}
}

// IntN returns a uniform value in [0, n), advancing the internal counter.
func (r *SeededRand) IntN(n int) int {
	if n <= 0 {
		panic("wfc: invalid argument to IntN")
	}
	h := xxhash64(r.counter, r.seed)
	r.counter++
	return int(h % uint64(n))
}

// xxhash64 is an unrolled xxh3-compatible mix turning (value, seed) pairs
// into a well-distributed 64-bit hash with no allocations. Shared with
// sparse.go's point sampler.
func xxhash64(v, seed uint64) uint64 {
	x := v ^ (0x1cad21f72c81017c ^ 0xdb979083e96dd4de) + seed
	x ^= bits.RotateLeft64(x, 49) ^ bits.RotateLeft64(x, 24)
	x *= 0x9fb21c651e98df25
	x ^= (x >> 35) + 4
	x *= 0x9fb21c651e98df25
	x ^= (x >> 28)
	return x
}

// GoRand adapts math/rand/v2 for callers (the CLI, when no --seed is
// given) that want an OS-seeded, non-reproducible stream.
type GoRand struct {
	r *rand.Rand
}

// NewGoRand returns a GoRand seeded from two OS-derived seeds.
func NewGoRand() *GoRand {
	return &GoRand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN returns a uniform value in [0, n).
func (r *GoRand) IntN(n int) int {
	return r.r.IntN(n)
}
