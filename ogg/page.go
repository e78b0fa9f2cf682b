// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	"bytes"
	"encoding/binary"
)

const (
	// HeaderSize is the fixed part of a page header, before the segment table.
	HeaderSize = 27
	// MaxSegmentSize is the largest lacing value.
	MaxSegmentSize = 255
	// MaxSegments is the largest number of lacing values in one page.
	MaxSegments = 255
	// MaxPageSize is the largest possible encoded page.
	MaxPageSize = HeaderSize + MaxSegments + MaxSegments*MaxSegmentSize
)

// Page header flags.
const (
	FlagContinued = 0x01
	FlagBOS       = 0x02
	FlagEOS       = 0x04
)

var capturePattern = []byte("OggS")

var byteOrder = binary.LittleEndian

// Page is one physical Ogg page. Body holds the concatenated packet
// fragments described by Segments.
type Page struct {
	Version    byte
	HeaderType byte
	// GranulePos is the codec-specific position at the end of the last
	// packet completed on this page, or -1 if no packet ends here.
	GranulePos int64
	Serial     uint32
	Sequence   uint32
	Segments   []byte
	Body       []byte
}

func (p *Page) IsContinued() bool { return p.HeaderType&FlagContinued != 0 }
func (p *Page) IsBOS() bool       { return p.HeaderType&FlagBOS != 0 }
func (p *Page) IsEOS() bool       { return p.HeaderType&FlagEOS != 0 }

// Packets returns the number of packets that end on this page.
func (p *Page) Packets() int {
	n := 0
	for _, l := range p.Segments {
		if l < MaxSegmentSize {
			n++
		}
	}
	return n
}

// Encode serialises the page and fills in its checksum.
func (p *Page) Encode() []byte {
	out := make([]byte, HeaderSize+len(p.Segments)+len(p.Body))
	copy(out[0:4], capturePattern)
	out[4] = p.Version
	out[5] = p.HeaderType
	byteOrder.PutUint64(out[6:14], uint64(p.GranulePos))
	byteOrder.PutUint32(out[14:18], p.Serial)
	byteOrder.PutUint32(out[18:22], p.Sequence)
	out[26] = byte(len(p.Segments))
	copy(out[HeaderSize:], p.Segments)
	copy(out[HeaderSize+len(p.Segments):], p.Body)

	hdrLen := HeaderSize + len(p.Segments)
	byteOrder.PutUint32(out[22:26], pageCRC(out[:hdrLen], out[hdrLen:]))

	return out
}

// ParsePage decodes the page at the start of data and returns it together
// with the number of bytes it occupies. It returns ErrShortPage when data
// holds only part of a page, ErrInvalidPage when data does not start with a
// version 0 page header, and ErrBadCRC when the checksum does not match.
// The returned page does not alias data.
func ParsePage(data []byte) (*Page, int, error) {
	if len(data) < HeaderSize {
		if !bytes.HasPrefix(capturePattern, data[:min(len(data), 4)]) {
			return nil, 0, ErrInvalidPage
		}
		return nil, 0, ErrShortPage
	}
	if !bytes.Equal(data[:4], capturePattern) || data[4] != 0 {
		return nil, 0, ErrInvalidPage
	}

	nsegs := int(data[26])
	hdrLen := HeaderSize + nsegs
	if len(data) < hdrLen {
		return nil, 0, ErrShortPage
	}

	bodyLen := 0
	for _, l := range data[HeaderSize:hdrLen] {
		bodyLen += int(l)
	}
	total := hdrLen + bodyLen
	if len(data) < total {
		return nil, 0, ErrShortPage
	}

	if byteOrder.Uint32(data[22:26]) != pageCRC(data[:hdrLen], data[hdrLen:total]) {
		return nil, 0, ErrBadCRC
	}

	p := &Page{
		Version:    data[4],
		HeaderType: data[5],
		GranulePos: int64(byteOrder.Uint64(data[6:14])),
		Serial:     byteOrder.Uint32(data[14:18]),
		Sequence:   byteOrder.Uint32(data[18:22]),
		Segments:   bytes.Clone(data[HeaderSize:hdrLen]),
		Body:       bytes.Clone(data[hdrLen:total]),
	}

	return p, total, nil
}

// Lacing returns the segment table for a single packet of n bytes.
func Lacing(n int) []byte {
	segs := make([]byte, 0, n/MaxSegmentSize+1)
	for n >= MaxSegmentSize {
		segs = append(segs, MaxSegmentSize)
		n -= MaxSegmentSize
	}
	return append(segs, byte(n))
}

// NewPage builds a page carrying whole packets. It fails with
// ErrPacketTooLarge if the packets need more than MaxSegments lacing values.
func NewPage(serial, sequence uint32, granule int64, flags byte, packets ...[]byte) (*Page, error) {
	p := &Page{
		HeaderType: flags,
		GranulePos: granule,
		Serial:     serial,
		Sequence:   sequence,
	}
	for _, pkt := range packets {
		p.Segments = append(p.Segments, Lacing(len(pkt))...)
		p.Body = append(p.Body, pkt...)
	}
	if len(p.Segments) > MaxSegments {
		return nil, ErrPacketTooLarge
	}
	return p, nil
}
