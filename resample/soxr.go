// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Soxr adapts the polyphase resampler of go-audio-resampling to the
// push interface. Channels are filtered separately. It consumes whole input
// buffers and queues the output that does not fit.
type Soxr struct {
	resampler resampling.Resampler
	channels  int
	latency   int

	planes  [][]float64
	pending []float32
}

// NewSoxr creates a high quality resampler for interleaved frames of the
// given channel count.
func NewSoxr(channels, inRate, outRate int) (*Soxr, error) {
	if err := validate(channels, inRate, outRate); err != nil {
		return nil, err
	}

	config := &resampling.Config{
		InputRate:  float64(inRate),
		OutputRate: float64(outRate),
		Channels:   channels,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}
	rs, err := resampling.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	return &Soxr{
		resampler: rs,
		channels:  channels,
		latency:   inputLatency(rs),
		planes:    make([][]float64, channels),
	}, nil
}

// inputLatency converts the filter delay, reported in output samples, to
// input frames.
func inputLatency(rs resampling.Resampler) int {
	ratio := rs.GetRatio()
	if ratio <= 0 {
		return 0
	}
	return int(math.Ceil(float64(rs.GetLatency()) / ratio))
}

// InputLatency is the filter delay in input frames.
func (r *Soxr) InputLatency() int { return r.latency }

func (r *Soxr) Process(in, out []float32) (int, int, error) {
	ch := r.channels
	if len(in)%ch != 0 || len(out)%ch != 0 {
		return 0, 0, ErrInvalidBufSize
	}

	// First return any leftover data
	n := r.drainPending(out)
	if n == len(out) || len(in) == 0 {
		return 0, n / ch, nil
	}

	frames := len(in) / ch
	for c := range r.planes {
		if cap(r.planes[c]) < frames {
			r.planes[c] = make([]float64, frames)
		}
		r.planes[c] = r.planes[c][:frames]
		for i := range frames {
			r.planes[c][i] = float64(in[i*ch+c])
		}
	}

	output, err := r.resampler.ProcessMulti(r.planes)
	if err != nil {
		return 0, n / ch, fmt.Errorf("resample failed: %w", err)
	}
	r.interleave(output)

	n += r.drainPending(out[n:])

	return frames, n / ch, nil
}

// interleave appends the frames common to all planes to the queue.
func (r *Soxr) interleave(planes [][]float64) {
	frames := len(planes[0])
	for _, p := range planes[1:] {
		frames = min(frames, len(p))
	}

	for i := range frames {
		for _, p := range planes {
			r.pending = append(r.pending, float32(p[i]))
		}
	}
}

// drainPending moves whole frames of queued output into dst and returns the
// number of samples moved.
func (r *Soxr) drainPending(dst []float32) int {
	n := min(len(dst), len(r.pending))
	n -= n % r.channels
	copy(dst, r.pending[:n])
	r.pending = append(r.pending[:0], r.pending[n:]...)
	return n
}
