// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"math"

	"github.com/ik5/opusdec/utils"
)

// cubicLatency is the lookahead of the interpolator: output between frames
// n and n+1 needs frame n+2.
const cubicLatency = 2

// cutoff is the low-pass corner relative to the output rate.
const cutoff = 0.45

// Cubic resamples with Catmull-Rom interpolation.
// Includes basic anti-aliasing filtering when downsampling.
type Cubic struct {
	channels int
	ratio    float64 // inRate / outRate - how many input frames per output frame

	// History holding 4 frames for cubic interpolation
	// hist[0] = t-1, hist[1] = t0, hist[2] = t+1, hist[3] = t+2
	hist   [4][]float32
	primed int

	// Position between hist[1] and hist[2], in input frames
	pos float64

	passthrough bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
}

// NewCubic creates a cubic interpolator for interleaved frames of the given
// channel count. Equal rates pass frames through unchanged.
func NewCubic(channels, inRate, outRate int) (*Cubic, error) {
	if err := validate(channels, inRate, outRate); err != nil {
		return nil, err
	}

	r := &Cubic{
		channels:    channels,
		ratio:       float64(inRate) / float64(outRate),
		passthrough: inRate == outRate,
		filterState: make([]float32, channels),
	}

	if r.ratio > 1 {
		// One-pole low-pass: y[n] = alpha * x[n] + (1-alpha) * y[n-1]
		r.useFilter = true
		r.filterAlpha = float32(1 - math.Exp(-2*math.Pi*cutoff/r.ratio))
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Cubic) InputLatency() int {
	if r.passthrough {
		return 0
	}
	return cubicLatency
}

func (r *Cubic) Process(in, out []float32) (int, int, error) {
	ch := r.channels
	if len(in)%ch != 0 || len(out)%ch != 0 {
		return 0, 0, ErrInvalidBufSize
	}
	inFrames, outFrames := len(in)/ch, len(out)/ch

	if r.passthrough {
		n := min(inFrames, outFrames)
		copy(out, in[:n*ch])
		return n, n, nil
	}

	consumed, produced := 0, 0
	for produced < outFrames {
		if r.primed == len(r.hist)-1 && r.pos < 1 {
			r.interpolate(out[produced*ch : (produced+1)*ch])
			produced++
			r.pos += r.ratio
			continue
		}

		if consumed == inFrames {
			break
		}
		r.push(in[consumed*ch : (consumed+1)*ch])
		consumed++
	}

	return consumed, produced, nil
}

// push adds one input frame to the history.
func (r *Cubic) push(frame []float32) {
	if r.useFilter {
		if r.primed == 0 {
			// Start from the first frame to avoid warm-up transients
			copy(r.filterState, frame)
		}
		for c, v := range frame {
			r.filterState[c] = r.filterAlpha*v + (1-r.filterAlpha)*r.filterState[c]
		}
		frame = r.filterState
	}

	if r.primed < len(r.hist)-1 {
		copy(r.hist[r.primed+1], frame)
		if r.primed == 0 {
			// No frame before the first one: duplicate the edge.
			copy(r.hist[0], frame)
		}
		r.primed++
		return
	}

	// Shift frames: [0,1,2,3] -> [1,2,3,new]
	oldest := r.hist[0]
	r.hist[0], r.hist[1], r.hist[2] = r.hist[1], r.hist[2], r.hist[3]
	r.hist[3] = oldest
	copy(r.hist[3], frame)
	r.pos--
}

func (r *Cubic) interpolate(dst []float32) {
	x := float32(r.pos)
	for c := range dst {
		dst[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
	}
}
