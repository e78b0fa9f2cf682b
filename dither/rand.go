// SPDX-License-Identifier: EPL-2.0

package dither

// DefaultSeed is the seed used when none is configured.
const DefaultSeed = 22222

const (
	lcgMultiplier = 96314165
	lcgIncrement  = 907633515
	// randScale maps a uint32 onto [0, 1].
	randScale float32 = 1.0 / 4294967296.0
)

// Rand is a 32-bit linear congruential generator. It is not safe for
// concurrent use; give every stream its own.
type Rand struct {
	seed uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{seed: seed}
}

// Uint32 advances the generator and returns the new state.
func (r *Rand) Uint32() uint32 {
	r.seed = r.seed*lcgMultiplier + lcgIncrement
	return r.seed
}

// Float32 returns a value in [0, 1]. Values close to 2^32 round up to 1.
func (r *Rand) Float32() float32 {
	return float32(float32(r.Uint32()) * randScale)
}

// Triangular returns the difference of two uniform values, in [-1, 1].
func (r *Rand) Triangular() float32 {
	u1 := r.Float32()
	u2 := r.Float32()
	return u1 - u2
}
