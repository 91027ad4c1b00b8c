package math

import "math"

// RNG is a PCG-XSH-RR generator: 64 bits of state, 32 bit output. Cheap
// enough to keep one per pixel, and seedable on independent streams so pixel
// generators never correlate.
type RNG struct {
	State uint64
	Inc   uint64
}

const pcgMult = 6364136223846793005

// NewRNG seeds a generator on the default stream.
func NewRNG(seed uint64) RNG {
	return NewRNGStream(seed, 1)
}

// NewRNGStream seeds a generator on the given stream. Distinct streams
// produce independent sequences for any seed.
func NewRNGStream(seed, stream uint64) RNG {
	r := RNG{State: 0, Inc: stream<<1 | 1}
	r.next()
	r.State += seed
	r.next()
	return r
}

func (r *RNG) next() uint32 {
	old := r.State
	r.State = old*pcgMult + r.Inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Float returns a uniform float32 in [0, 1).
func (r *RNG) Float() float32 {
	return math.Float32frombits(r.next()>>9|0x3f800000) - 1
}

// Float2 returns two uniform float32 values in [0, 1).
func (r *RNG) Float2() Vec2 {
	x := r.Float()
	y := r.Float()
	return Vec2{x, y}
}

// Int returns a uniform int in [0, n).
func (r *RNG) Int(n int) int {
	return int(r.next() % uint32(n))
}
