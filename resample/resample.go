// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"strings"
)

// Resampler is a streaming sample rate converter over interleaved frames.
type Resampler interface {
	// Process reads frames from in and writes frames to out. Both lengths
	// must be multiples of the channel count. The counts are in frames.
	Process(in, out []float32) (consumed, produced int, err error)
	// InputLatency is the number of silent frames that flush the tail.
	InputLatency() int
}

// Quality selects a Resampler implementation.
type Quality string

const (
	QualityCubic Quality = "cubic"
	QualityHigh  Quality = "high"
)

// ParseQuality accepts a quality name, case insensitive.
func ParseQuality(s string) (Quality, error) {
	switch q := Quality(strings.ToLower(strings.TrimSpace(s))); q {
	case QualityCubic, QualityHigh:
		return q, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

// New creates a Resampler of the given quality.
func New(q Quality, channels, inRate, outRate int) (Resampler, error) {
	switch q {
	case QualityCubic:
		return NewCubic(channels, inRate, outRate)
	case QualityHigh:
		if inRate == outRate {
			// Nothing to filter.
			return NewCubic(channels, inRate, outRate)
		}
		return NewSoxr(channels, inRate, outRate)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, q)
}

// Factory binds q so the result can be handed to code that only knows rates.
func Factory(q Quality) func(channels, inRate, outRate int) (Resampler, error) {
	return func(channels, inRate, outRate int) (Resampler, error) {
		return New(q, channels, inRate, outRate)
	}
}

func validate(channels, inRate, outRate int) error {
	if channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, channels)
	}
	if inRate <= 0 || outRate <= 0 {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidRate, inRate, outRate)
	}
	return nil
}
