// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/opusdec/audio"
)

// readBuffer is the number of samples read per call.
const readBuffer = 4096

// Run is a value of the sorted squared differences and how often it occurs.
type Run struct {
	Value int64
	Count int
}

// Channel holds the difference statistics of one channel.
type Channel struct {
	// MeanSquare is the mean of the squared differences.
	MeanSquare float64
	// SquaredMean is the square of the mean difference.
	SquaredMean float64
	// Histogram lists the distinct squared differences in ascending order.
	Histogram []Run
}

// Variance is the variance of the differences.
func (c Channel) Variance() float64 { return c.MeanSquare - c.SquaredMean }

// Report is the result of comparing two stereo streams frame by frame.
type Report struct {
	Frames int
	Left   Channel
	Right  Channel
}

// Compare reads a and b to the end and compares their first common frames.
// Mono inputs are compared as stereo with both channels equal.
func Compare(a, b audio.Source) (*Report, error) {
	pa, err := readStereo(a)
	if err != nil {
		return nil, fmt.Errorf("reading first input: %w", err)
	}
	pb, err := readStereo(b)
	if err != nil {
		return nil, fmt.Errorf("reading second input: %w", err)
	}

	frames := min(len(pa), len(pb)) / 2
	if frames == 0 {
		return nil, ErrNoFrames
	}

	return &Report{
		Frames: frames,
		Left:   diffChannel(pa, pb, 0, frames),
		Right:  diffChannel(pa, pb, 1, frames),
	}, nil
}

// Files decodes both paths through reg and compares them.
func Files(reg *audio.Registry, pathA, pathB string) (*Report, error) {
	a, err := reg.Open(pathA)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	b, err := reg.Open(pathB)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return Compare(a, b)
}

func readStereo(src audio.Source) ([]int16, error) {
	st, err := audio.NewStereo(src)
	if err != nil {
		return nil, err
	}
	return audio.ReadAll(st, readBuffer)
}

func diffChannel(a, b []int16, c, frames int) Channel {
	sq := make([]int64, frames)
	var sum int64
	for i := range frames {
		d := int64(a[2*i+c]) - int64(b[2*i+c])
		sum += d
		sq[i] = d * d
	}
	slices.Sort(sq)

	var sumSq int64
	for _, v := range sq {
		sumSq += v
	}

	n := float64(frames)
	mean := float64(sum) / n

	return Channel{
		MeanSquare:  float64(sumSq) / n,
		SquaredMean: mean * mean,
		Histogram:   histogram(sq),
	}
}

// histogram collapses a sorted slice into runs of equal values.
func histogram(sorted []int64) []Run {
	var runs []Run
	for _, v := range sorted {
		if len(runs) > 0 && runs[len(runs)-1].Value == v {
			runs[len(runs)-1].Count++
			continue
		}
		runs = append(runs, Run{Value: v, Count: 1})
	}
	return runs
}

// WriteTo prints the report in the wavdiff text layout.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: bufio.NewWriter(w)}

	r.Left.write(cw, "left")
	r.Right.write(cw, "right")

	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

func (c Channel) write(w *countWriter, name string) {
	w.printf("diff.%s = %#.10g - %#.10g\n", name, c.MeanSquare, c.SquaredMean)
	for _, run := range c.Histogram {
		w.printf("%d\t%d\n", run.Value, run.Count)
	}
	w.printf("\n")
}

// countWriter keeps the first error and the number of bytes written.
type countWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countWriter) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	n, err := fmt.Fprintf(c.w, format, args...)
	c.n += int64(n)
	c.err = err
}
