// SPDX-License-Identifier: EPL-2.0

// Package dither converts float PCM to 16-bit PCM with noise-shaped
// triangular dither.
//
// The shaper is an 8-tap feedback filter tuned for 44.1 kHz output. For every
// sample it predicts the quantization error from the last four errors and the
// last four filter outputs, subtracts that prediction, adds the difference of
// two uniform random values and rounds. The stored error is clamped to
// [-1.5, 1.5] so clipped input cannot drive the filter unstable.
//
// Each Shaper owns a Rand. Two shapers built from equal seeds produce equal
// output for equal input, and shapers never share state:
//
//	sh := dither.NewShaper(dither.NewRand(dither.DefaultSeed))
//	out := make([]int16, len(pcm))
//	sh.Quantize(out, pcm) // pcm is interleaved stereo in [-1, 1]
package dither
