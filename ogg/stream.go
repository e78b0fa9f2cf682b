// SPDX-License-Identifier: EPL-2.0

package ogg

// Packet is one logical packet reassembled from page segments.
type Packet struct {
	Data []byte
	// BOS is set on the first packet of a logical stream.
	BOS bool
	// EOS is set on the last packet of a logical stream.
	EOS bool
	// GranulePos is the page granule position for the last packet that
	// ends on a page and -1 for the others.
	GranulePos int64
	// PacketNo counts packets from the start of the stream, holes included.
	PacketNo int64
}

type queued struct {
	pkt  Packet
	hole bool
}

// Stream reassembles the packets of one logical bitstream.
// It is not safe for concurrent use.
type Stream struct {
	serial   uint32
	nextSeq  uint32
	started  bool
	bos      bool
	partial  []byte
	inPacket bool
	packetNo int64
	queue    []queued
	eos      bool
}

// NewStream creates a Stream that accepts pages with the given serial.
func NewStream(serial uint32) *Stream {
	return &Stream{serial: serial}
}

// Serial returns the serial the stream was created for.
func (s *Stream) Serial() uint32 { return s.serial }

// EOS reports whether the end-of-stream page was submitted.
func (s *Stream) EOS() bool { return s.eos }

// PageIn submits the next page of the stream.
func (s *Stream) PageIn(p *Page) error {
	if p.Serial != s.serial {
		return ErrSerialMismatch
	}

	if s.started && p.Sequence != s.nextSeq {
		s.markHole()
	}
	s.started = true
	s.nextSeq = p.Sequence + 1

	segs := p.Segments
	body := p.Body
	if p.IsContinued() && !s.inPacket {
		// The start of this packet is gone: skip its tail.
		for len(segs) > 0 {
			l := int(segs[0])
			segs = segs[1:]
			body = body[l:]
			if l < MaxSegmentSize {
				break
			}
		}
	} else if !p.IsContinued() && s.inPacket {
		s.markHole()
	}

	last := -1
	for i, l := range segs {
		if l < MaxSegmentSize {
			last = i
		}
	}

	bos := p.IsBOS() && !s.bos
	s.bos = s.bos || p.IsBOS()
	for i, l := range segs {
		s.partial = append(s.partial, body[:l]...)
		body = body[l:]
		s.inPacket = true
		if l == MaxSegmentSize {
			continue
		}

		pkt := Packet{
			Data:       s.partial,
			BOS:        bos,
			GranulePos: -1,
			PacketNo:   s.packetNo,
		}
		if i == last {
			pkt.GranulePos = p.GranulePos
			pkt.EOS = p.IsEOS()
		}
		s.queue = append(s.queue, queued{pkt: pkt})
		s.packetNo++
		s.partial = nil
		s.inPacket = false
		bos = false
	}

	if p.IsEOS() {
		s.eos = true
	}

	return nil
}

// PacketOut returns the next complete packet. It returns ErrNoPacket when
// none is ready and ErrHole, once per gap, when pages were lost before the
// next packet.
func (s *Stream) PacketOut() (Packet, error) {
	if len(s.queue) == 0 {
		return Packet{}, ErrNoPacket
	}
	q := s.queue[0]
	s.queue[0] = queued{}
	s.queue = s.queue[1:]
	if q.hole {
		return Packet{}, ErrHole
	}
	return q.pkt, nil
}

// markHole drops the packet being assembled and queues a loss report in
// its place.
func (s *Stream) markHole() {
	s.partial = nil
	s.inPacket = false
	s.queue = append(s.queue, queued{hole: true})
	s.packetNo++
}
