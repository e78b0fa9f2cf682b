// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"max positive clamps", 1, math.MaxInt16},
		{"max negative", -1, math.MinInt16},
		{"half positive", 0.5, 16384},
		{"half negative", -0.5, -16384},
		{"rounds up", 0.001, 33},
		{"rounds down", -0.001, -33},
		{"clamp way over max", 100, math.MaxInt16},
		{"clamp way under min", -100, math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_RoundTrip(t *testing.T) {
	t.Parallel()

	for s := math.MinInt16; s <= math.MaxInt16; s += 7 {
		if got := Float32ToInt16(Int16ToFloat32(int16(s))); got != int16(s) {
			t.Fatalf("round trip of %d = %d", s, got)
		}
	}
}

func TestInt32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s        int32
		bitDepth int
		want     int16
	}{
		{1 << 22, 24, 1 << 14},
		{-1 << 23, 24, math.MinInt16},
		{0x1234, 16, 0x1234},
		{-100, 8, -100 << 8},
		{0x7fffffff, 32, math.MaxInt16},
	}

	for _, tt := range tests {
		if got := Int32ToInt16(tt.s, tt.bitDepth); got != tt.want {
			t.Errorf("Int32ToInt16(%d, %d) = %d, want %d", tt.s, tt.bitDepth, got, tt.want)
		}
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	floatSamples := make([]float32, 8000)
	int16Samples := make([]int16, 8000)
	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()
	for range b.N {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}
