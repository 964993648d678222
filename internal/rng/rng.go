// Package rng implements the deterministic pseudo-random stream used by
// scenario generation. The stream is a pure function of a 32-bit seed and is
// bit-reproducible across platforms, so a (seed, scenario) pair always names
// the same frame. Not cryptographic.
package rng

// Rand is a mulberry32 generator. A Rand is single-owner: generation code
// advances it in one fixed call order and must never share an instance
// across concurrent generations, or reproducibility from the seed breaks.
type Rand struct {
	state uint32
}

// New returns a generator seeded with the given 32-bit seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float returns the next value in [0, 1). All intermediate arithmetic is
// uint32, matching the reference mulberry32 stream bit for bit.
func (r *Rand) Float() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / (1 << 32)
}

// IntN returns a uniform integer in [min, max], both bounds inclusive.
func (r *Rand) IntN(min, max int) int {
	return int(r.Float()*float64(max-min+1)) + min
}

// Byte returns a uniform byte.
func (r *Rand) Byte() byte {
	return byte(r.IntN(0, 255))
}
