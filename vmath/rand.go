package vmath

// LCG is a 64-bit linear-congruential generator for deterministic
// procedural generation. The same seed always yields the same sequence,
// independent of platform or map iteration order
//
// Not suitable for cryptographic use
type LCG struct {
	state uint64
}

// NewLCG creates a generator from a seed. Zero seeds are remapped so the
// sequence never degenerates
func NewLCG(seed uint64) *LCG {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &LCG{state: seed}
}

// Next advances the generator and returns the next 64-bit value
func (r *LCG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float returns a uniform float64 in [0, 1)
func (r *LCG) Float() float64 {
	// Top 53 bits for full float64 mantissa precision
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform float64 in [lo, hi)
func (r *LCG) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Intn returns a uniform int in [0, n); n <= 0 returns 0
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
