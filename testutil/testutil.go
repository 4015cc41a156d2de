package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float32 returns a pseudo-random number in [0, 1).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Float32InRange returns a pseudo-random number in [lo, hi).
func (r *RNG) Float32InRange(lo, hi float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Float32()*(hi-lo)
}

// FillUniformRange fills dst with uniform pseudo-random values in [lo, hi).
func (r *RNG) FillUniformRange(dst []float32, lo, hi float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = lo + r.rand.Float32()*(hi-lo)
	}
}

// FillLogUniform fills dst with values of the form ±m*2^e, where the
// unbiased exponent e is uniform in [minExp, maxExp], the significand m is
// uniform in [1, 2), and the sign is random. This spreads samples evenly
// across binades instead of clustering them near the range maximum.
func (r *RNG) FillLogUniform(dst []float32, minExp, maxExp int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		e := minExp + r.rand.Intn(maxExp-minExp+1)
		m := 1 + r.rand.Float64()
		v := float32(math.Ldexp(m, e))
		if r.rand.Intn(2) == 1 {
			v = -v
		}
		dst[i] = v
	}
}
