// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const int16Scale = 32768.0

// Float32ToInt16 scales a [-1, 1] sample to 16 bits, rounding to nearest and
// clamping to the int16 range. No dither is applied.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * int16Scale)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// Int16ToFloat32 maps a 16-bit sample onto [-1, 1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / int16Scale
}

// Int32ToInt16 narrows a sample of the given bit depth to 16 bits.
func Int32ToInt16(s int32, bitDepth int) int16 {
	switch {
	case bitDepth > 16:
		return int16(s >> (bitDepth - 16))
	case bitDepth < 16:
		return int16(s << (16 - bitDepth))
	}
	return int16(s)
}
