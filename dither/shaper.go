// SPDX-License-Identifier: EPL-2.0

package dither

import "math"

// Channels is the number of interleaved channels a Shaper expects.
const Channels = 2

// Gain scales [-1, 1] floats to the 16-bit range, with headroom for the
// dither.
const Gain float32 = 32768 - 15

// MaxError bounds the stored quantization error.
const MaxError float32 = 1.5

// coef holds the four error taps followed by the four feedback taps.
var coef = [8]float32{2.2061, -0.4706, -0.2534, -0.6214, 1.0587, 0.0676, -0.6054, -0.2738}

// Shaper is a stereo noise-shaping quantizer. It is not safe for concurrent
// use.
type Shaper struct {
	rng *Rand
	// a holds past filter outputs, b past quantization errors, newest first.
	a [Channels][4]float32
	b [Channels][4]float32
}

func NewShaper(rng *Rand) *Shaper {
	return &Shaper{rng: rng}
}

// Quantize converts the interleaved stereo samples of src into dst. Only
// min(len(dst), len(src)) samples are converted.
func (sh *Shaper) Quantize(dst []int16, src []float32) {
	n := min(len(dst), len(src))
	for i := range n {
		c := i % Channels

		s := float32(src[i] * Gain)
		err := sh.shape(c)
		s -= err

		si := roundClamp(s + sh.rng.Triangular())
		dst[i] = si

		sh.recordError(c, float32(si)-s)
	}
}

// shape predicts the error for the next sample of channel c and pushes the
// prediction into the feedback history.
func (sh *Shaper) shape(c int) float32 {
	a, b := &sh.a[c], &sh.b[c]

	var err float32
	for j := range 4 {
		err += float32(coef[j]*b[j]) - float32(coef[j+4]*a[j])
	}

	copy(a[1:], a[:3])
	copy(b[1:], b[:3])
	a[0] = err

	return err
}

func (sh *Shaper) recordError(c int, e float32) {
	sh.b[c][0] = max(-MaxError, min(e, MaxError))
}

// Reset clears the filter history. The generator is left untouched.
func (sh *Shaper) Reset() {
	sh.a = [Channels][4]float32{}
	sh.b = [Channels][4]float32{}
}

// State returns a copy of the feedback (a) and error (b) histories.
func (sh *Shaper) State() (a, b [Channels][4]float32) {
	return sh.a, sh.b
}

func roundClamp(v float32) int16 {
	r := math.Round(float64(v))
	switch {
	case r > math.MaxInt16:
		return math.MaxInt16
	case r < math.MinInt16:
		return math.MinInt16
	}
	return int16(r)
}
