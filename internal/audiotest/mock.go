// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory audio for tests.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/opusdec/utils"
)

// Sine returns frames of interleaved samples of a half-scale sine wave. Every
// channel carries the same signal.
func Sine(frames, channels, sampleRate int, frequency float64) []float32 {
	out := make([]float32, frames*channels)
	for i := range frames {
		v := float32(0.5 * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)))
		for c := range channels {
			out[i*channels+c] = v
		}
	}
	return out
}

// MockSource generates 16-bit audio from a waveform function.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

// NewSineSource creates a mock source that generates a half-scale sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(0.5 * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewPCMSource serves fixed interleaved samples.
func NewPCMSource(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(sample int, channel int) float32 {
		return utils.Int16ToFloat32(samples[sample*channels+channel])
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

// ReadPCM fills dst with whole frames and returns the number of samples
// written. It returns io.EOF together with the last samples.
func (m *MockSource) ReadPCM(dst []int16) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = utils.Float32ToInt16(m.waveform(sampleIndex, ch))
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
