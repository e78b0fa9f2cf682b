// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/ik5/opusdec/formats/oggopus"
	"github.com/ik5/opusdec/resample"
	"github.com/rs/zerolog"
)

// StreamDecoder runs one logical stream through decode, trim, resample,
// dither and write. Packets are numbered in arrival order: packet 0 is the
// identification header, packet 1 the comment header, the rest is audio.
// A StreamDecoder is not safe for concurrent use. Independent
// StreamDecoders share nothing and may run in parallel.
type StreamDecoder struct {
	serial uint32
	sink   Sink
	log    zerolog.Logger
	strict bool
	rate   int

	dec   Decoder
	rs    resample.Resampler
	quant Quantizer

	state    State
	packetNo int64
	head     oggopus.Head
	hasHead  bool

	preSkip    int64 // from the header
	pendingPre int64 // still to be dropped
	granule    int64 // last page granule seen
	linkOut    int64

	pcm     []float32
	out     []float32
	samples []int16
	silence []float32

	stats Stats
}

// NewStreamDecoder builds the per-stream collaborators from cfg. Any
// construction failure is reported as ErrStreamSetup.
func NewStreamDecoder(serial uint32, sink Sink, cfg Config) (*StreamDecoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dec, err := cfg.NewDecoder()
	if err != nil {
		return nil, fmt.Errorf("%w: decoder: %w", ErrStreamSetup, err)
	}
	rs, err := cfg.NewResampler(Channels, oggopus.SampleRate, cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("%w: resampler: %w", ErrStreamSetup, err)
	}
	quant := cfg.NewQuantizer(cfg.Seed)
	if quant == nil {
		return nil, fmt.Errorf("%w: no quantizer", ErrStreamSetup)
	}

	return &StreamDecoder{
		serial:  serial,
		sink:    sink,
		log:     cfg.Logger.With().Str("serial", fmt.Sprintf("%08x", serial)).Logger(),
		strict:  cfg.Strict,
		rate:    cfg.Rate,
		dec:     dec,
		rs:      rs,
		quant:   quant,
		state:   StreamHeader,
		pcm:     make([]float32, oggopus.MaxFrameSize*Channels),
		out:     make([]float32, cfg.ChunkFrames*Channels),
		samples: make([]int16, cfg.ChunkFrames*Channels),
		stats:   Stats{Streams: 1},
	}, nil
}

// Serial returns the serial number of the logical stream.
func (s *StreamDecoder) Serial() uint32 { return s.serial }

// State returns where the stream is in its lifecycle.
func (s *StreamDecoder) State() State { return s.state }

// LinkOut returns the number of frames written so far.
func (s *StreamDecoder) LinkOut() int64 { return s.linkOut }

// Head returns the parsed identification header. ok is false until packet 0
// was handled.
func (s *StreamDecoder) Head() (head oggopus.Head, ok bool) { return s.head, s.hasHead }

// Stats returns the counters for this stream. Frames is the number of frames
// written so far.
func (s *StreamDecoder) Stats() Stats {
	st := s.stats
	st.Frames = s.linkOut
	return st
}

// HandlePacket processes the next packet. granule is the granule position of
// the page the packet was taken from; -1 leaves the output ceiling where it
// was.
func (s *StreamDecoder) HandlePacket(packet []byte, granule int64) error {
	if s.state >= Draining {
		return ErrStreamClosed
	}
	s.setGranule(granule)
	s.stats.Packets++

	no := s.packetNo
	s.packetNo++

	switch no {
	case 0:
		return s.handleHead(packet)
	case 1:
		if !oggopus.IsTags(packet) {
			s.log.Warn().Msg("second packet is not an OpusTags header")
		}
		s.state = Decoding
		return nil
	}

	n, err := s.dec.Decode(packet, s.pcm)
	if err != nil {
		perr := &PacketError{Serial: s.serial, PacketNo: no, Err: err}
		if s.strict {
			return perr
		}
		s.stats.DecodeErrors++
		s.log.Warn().Err(perr).Msg("decode failed, concealing")

		n, err = s.dec.Decode(nil, s.pcm)
		if err != nil {
			s.log.Warn().Err(err).Int64("packet", no).Msg("concealment failed, packet dropped")
			return nil
		}
	}

	return s.emit(s.pcm[:n*Channels])
}

// HandleLoss reports a packet lost in transit. Audio packets are concealed;
// a lost header packet only advances the packet count.
func (s *StreamDecoder) HandleLoss(granule int64) error {
	if s.state >= Draining {
		return ErrStreamClosed
	}
	s.setGranule(granule)
	s.stats.LostPackets++

	no := s.packetNo
	s.packetNo++
	if no < 2 {
		s.log.Warn().Int64("packet", no).Msg("header packet lost")
		if no == 1 {
			s.state = Decoding
		}
		return nil
	}

	s.log.Debug().Int64("packet", no).Msg("packet lost, concealing")
	n, err := s.dec.Decode(nil, s.pcm)
	if err != nil {
		perr := &PacketError{Serial: s.serial, PacketNo: no, Err: err}
		if s.strict {
			return perr
		}
		s.stats.DecodeErrors++
		s.log.Warn().Err(perr).Msg("concealment failed")
		return nil
	}

	return s.emit(s.pcm[:n*Channels])
}

// Drain pushes InputLatency frames of silence through the resampler under
// the same ceiling and closes the stream.
func (s *StreamDecoder) Drain(granule int64) error {
	if s.state == Closed {
		return nil
	}
	s.setGranule(granule)
	s.state = Draining

	latency := s.rs.InputLatency()
	if latency > 0 {
		if cap(s.silence) < latency*Channels {
			s.silence = make([]float32, latency*Channels)
		}
		if err := s.convert(s.silence[:latency*Channels]); err != nil {
			return err
		}
	}

	s.state = Closed
	s.log.Debug().Int64("frames", s.linkOut).Msg("stream drained")

	return nil
}

// Close releases the stream buffers. A closed stream can still report its
// statistics.
func (s *StreamDecoder) Close() error {
	s.state = Closed
	s.pcm, s.out, s.samples, s.silence = nil, nil, nil, nil
	return nil
}

func (s *StreamDecoder) handleHead(packet []byte) error {
	head, err := oggopus.ParseHead(packet)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStreamSetup, err)
	}

	s.head = head
	s.hasHead = true
	s.preSkip = int64(head.PreSkip)
	s.pendingPre = s.preSkip

	s.log.Info().
		Int("channels", head.Channels).
		Int("pre_skip", head.PreSkip).
		Uint32("input_rate", head.InputRate).
		Int16("gain", head.OutputGain).
		Msg("opus stream")

	return nil
}

func (s *StreamDecoder) setGranule(granule int64) {
	if granule >= 0 {
		s.granule = granule
	}
}

// room is the number of frames the ceiling still allows. The product of
// granule and rate is taken in 128 bits; granules near 2^63 would overflow.
func (s *StreamDecoder) room() int64 {
	g := s.granule - s.preSkip
	if g <= 0 {
		return g*int64(s.rate)/oggopus.SampleRate - s.linkOut
	}

	hi, lo := bits.Mul64(uint64(g), uint64(s.rate))
	if hi >= oggopus.SampleRate {
		return math.MaxInt64
	}
	ceiling, _ := bits.Div64(hi, lo, oggopus.SampleRate)
	if ceiling > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(ceiling) - s.linkOut
}

// emit trims the pre-skip from the front of pcm and resamples the rest.
func (s *StreamDecoder) emit(pcm []float32) error {
	if s.pendingPre > 0 {
		drop := min(s.pendingPre, int64(len(pcm)/Channels))
		pcm = pcm[drop*Channels:]
		s.pendingPre -= drop
	}
	if len(pcm) == 0 {
		return nil
	}

	return s.convert(pcm)
}

// convert feeds in to the resampler chunk by chunk and writes what comes
// out, stopping at the ceiling.
func (s *StreamDecoder) convert(in []float32) error {
	for {
		room := s.room()
		if room <= 0 {
			return nil
		}
		chunk := min(int64(len(s.out)/Channels), room)

		consumed, produced, err := s.rs.Process(in, s.out[:chunk*Channels])
		if err != nil {
			return fmt.Errorf("resampling stream %08x: %w", s.serial, err)
		}
		in = in[consumed*Channels:]

		if produced > 0 {
			n := produced * Channels
			s.quant.Quantize(s.samples[:n], s.out[:n])
			if err := s.sink.WriteFrames(s.samples[:n]); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			s.linkOut += int64(produced)
		}

		if consumed == 0 && produced == 0 {
			return nil
		}
	}
}
