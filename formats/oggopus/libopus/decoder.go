// SPDX-License-Identifier: EPL-2.0

// Package libopus decodes Opus packets with libopus through
// gopkg.in/hraban/opus.v2. It needs cgo and the libopus headers.
//
//	dec, err := libopus.New(2)
//	pcm := make([]float32, oggopus.MaxFrameSize*2)
//	n, err := dec.Decode(packet, pcm) // n samples per channel
//	n, err = dec.Decode(nil, pcm)     // conceal one lost packet
package libopus

import (
	"fmt"

	"github.com/ik5/opusdec/formats/oggopus"
	"gopkg.in/hraban/opus.v2"
)

// defaultConcealment is used when a loss is reported before any packet was
// decoded.
const defaultConcealment = 960

// Decoder is a stateful 48 kHz Opus decoder. It is not safe for concurrent
// use.
type Decoder struct {
	dec       *opus.Decoder
	channels  int
	lastFrame int
}

func New(channels int) (*Decoder, error) {
	dec, err := opus.NewDecoder(oggopus.SampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus decoder: %w", err)
	}

	return &Decoder{dec: dec, channels: channels}, nil
}

// Decode decodes packet into pcm as interleaved float samples and returns the
// number of samples per channel. A nil packet marks a lost packet: the
// decoder then synthesises audio for the duration of the previous one.
func (d *Decoder) Decode(packet []byte, pcm []float32) (int, error) {
	if packet == nil {
		return d.conceal(pcm)
	}

	n, err := d.dec.DecodeFloat32(packet, pcm)
	if err != nil {
		return 0, fmt.Errorf("opus decode failed: %w", err)
	}
	d.lastFrame = n

	return n, nil
}

func (d *Decoder) conceal(pcm []float32) (int, error) {
	n := d.lastFrame
	if n == 0 {
		n = defaultConcealment
	}
	n = min(n, len(pcm)/d.channels)

	if err := d.dec.DecodePLCFloat32(pcm[:n*d.channels]); err != nil {
		return 0, fmt.Errorf("opus concealment failed: %w", err)
	}

	return n, nil
}
