// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/opusdec/formats/oggopus"
	"github.com/ik5/opusdec/ogg"
)

// Single-frame CELT packets: 2.5 ms and 20 ms.
var (
	packet120 = []byte{28<<3 | 0x04, 0}
	packet960 = []byte{31<<3 | 0x04, 0}
	badPacket = []byte{31<<3 | 0x04, 0xff, 0xff}
)

var errCorrupt = errors.New("corrupt packet")

// fakeDecoder decodes a packet to as many frames as its TOC announces.
// Every sample of frame i is counter+i, so trimming shows in the output.
type fakeDecoder struct {
	counter float32
	last    int
	calls   [][]byte
}

func (d *fakeDecoder) Decode(packet []byte, pcm []float32) (int, error) {
	d.calls = append(d.calls, packet)

	n := d.last
	if packet != nil {
		if bytes.Equal(packet, badPacket) {
			return 0, errCorrupt
		}
		var err error
		if n, err = oggopus.PacketSamples(packet); err != nil {
			return 0, err
		}
	}
	if n == 0 {
		n = 960
	}
	d.last = n

	for i := range n {
		for c := range Channels {
			pcm[i*Channels+c] = d.counter
		}
		d.counter++
	}

	return n, nil
}

// lossCount returns how often the decoder was asked to conceal.
func (d *fakeDecoder) lossCount() int {
	n := 0
	for _, p := range d.calls {
		if p == nil {
			n++
		}
	}
	return n
}

// truncQuantizer copies floats to ints without dither.
type truncQuantizer struct{}

func (truncQuantizer) Quantize(dst []int16, src []float32) {
	for i := range min(len(dst), len(src)) {
		dst[i] = int16(src[i])
	}
}

// silenceResampler passes frames through unchanged and records what it was
// fed.
type silenceResampler struct {
	latency int
	fed     []float32
}

func (r *silenceResampler) InputLatency() int { return r.latency }

func (r *silenceResampler) Process(in, out []float32) (int, int, error) {
	n := min(len(in), len(out)) / Channels
	copy(out, in[:n*Channels])
	r.fed = append(r.fed, in[:n*Channels]...)
	return n, n, nil
}

type memSink struct {
	samples []int16
	err     error
}

func (s *memSink) WriteFrames(pcm []int16) error {
	if s.err != nil {
		return s.err
	}
	s.samples = append(s.samples, pcm...)
	return nil
}

func (s *memSink) frames() int { return len(s.samples) / Channels }

// testConfig runs at 48 kHz through dec without dither.
func testConfig(dec *fakeDecoder) Config {
	cfg := DefaultConfig()
	cfg.Rate = oggopus.SampleRate
	cfg.NewDecoder = func() (Decoder, error) { return dec, nil }
	cfg.NewQuantizer = func(uint32) Quantizer { return truncQuantizer{} }
	return cfg
}

func opusHead(preSkip int) []byte {
	return oggopus.Head{Version: 1, Channels: 2, PreSkip: preSkip, InputRate: 48000}.Bytes()
}

var opusTags = []byte("OpusTags\x05\x00\x00\x00tests\x00\x00\x00\x00")

// streamBuilder produces the pages of one logical stream.
type streamBuilder struct {
	t      *testing.T
	serial uint32
	seq    uint32
}

func newStreamBuilder(t *testing.T, serial uint32) *streamBuilder {
	return &streamBuilder{t: t, serial: serial}
}

func (b *streamBuilder) page(granule int64, flags byte, packets ...[]byte) *ogg.Page {
	b.t.Helper()

	p, err := ogg.NewPage(b.serial, b.seq, granule, flags, packets...)
	if err != nil {
		b.t.Fatalf("NewPage() error = %v", err)
	}
	b.seq++
	return p
}

// headers returns the OpusHead and OpusTags pages.
func (b *streamBuilder) headers(preSkip int) []*ogg.Page {
	return []*ogg.Page{
		b.page(0, ogg.FlagBOS, opusHead(preSkip)),
		b.page(0, 0, opusTags),
	}
}

// skip loses the next page.
func (b *streamBuilder) skip() { b.seq++ }

func encode(pages ...*ogg.Page) []byte {
	var buf bytes.Buffer
	for _, p := range pages {
		buf.Write(p.Encode())
	}
	return buf.Bytes()
}

func handleAll(t *testing.T, d *Driver, pages ...*ogg.Page) {
	t.Helper()

	for _, p := range pages {
		if err := d.HandlePage(p); err != nil {
			t.Fatalf("HandlePage(seq %d) error = %v", p.Sequence, err)
		}
	}
}
