// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const bitDepth = 16

// Writer streams 16-bit PCM into a WAV file whose sizes are unknown up
// front. The header goes out when the Writer is created; Close seeks back
// and patches the RIFF and data sizes.
type Writer struct {
	out      *seekBuffer
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	frames   int64
	closed   bool
}

// NewWriter writes the header to w at once.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedWavLayout, channels, sampleRate)
	}

	out := newSeekBuffer(w)
	wr := &Writer{
		out:      out,
		enc:      gowav.NewEncoder(out, sampleRate, bitDepth, channels, pcmFormat),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}

	// An empty buffer makes the encoder emit the RIFF, fmt and data headers.
	if err := wr.enc.Write(wr.buf); err != nil {
		return nil, fmt.Errorf("writing WAV header: %w", err)
	}
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("writing WAV header: %w", err)
	}

	return wr, nil
}

// WriteFrames appends interleaved samples. pcm must hold whole frames.
func (w *Writer) WriteFrames(pcm []int16) error {
	if w.closed {
		return ErrClosed
	}
	if len(pcm)%w.channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(pcm), w.channels)
	}
	if len(pcm) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(pcm) {
		w.buf.Data = make([]int, len(pcm))
	}
	w.buf.Data = w.buf.Data[:len(pcm)]
	for i, s := range pcm {
		w.buf.Data[i] = int(s)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}
	w.frames += int64(len(pcm) / w.channels)

	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int64 { return w.frames }

// DataBytes returns the size of the data chunk payload so far.
func (w *Writer) DataBytes() int64 { return w.frames * int64(w.channels) * bitDepth / 8 }

// Close patches the header sizes. Failures wrap ErrFinalize. Close does not
// close the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFinalize, err)
	}
	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFinalize, err)
	}

	return nil
}

// seekBuffer batches the encoder's small writes and flushes them before
// every seek.
type seekBuffer struct {
	ws io.WriteSeeker
	bw *bufio.Writer
}

func newSeekBuffer(ws io.WriteSeeker) *seekBuffer {
	return &seekBuffer{ws: ws, bw: bufio.NewWriterSize(ws, 64*1024)}
}

func (s *seekBuffer) Write(p []byte) (int, error) { return s.bw.Write(p) }

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	if err := s.bw.Flush(); err != nil {
		return 0, err
	}
	return s.ws.Seek(offset, whence)
}

func (s *seekBuffer) Flush() error { return s.bw.Flush() }
