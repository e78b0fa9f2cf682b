// SPDX-License-Identifier: EPL-2.0

package oggopus

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// SampleRate is the rate every Opus stream is timed at.
	SampleRate = 48000
	// MaxFrameSize is the largest number of samples per channel one packet
	// can decode to (120 ms).
	MaxFrameSize = 5760
	// HeadSize is the size of the mapping family 0 identification header.
	HeadSize = 19
)

var (
	headMagic = []byte("OpusHead")
	tagsMagic = []byte("OpusTags")
)

// Head is the identification header of an Opus stream.
type Head struct {
	Version  uint8
	Channels int
	// PreSkip is the number of 48 kHz samples to discard from the start of
	// the decoded output.
	PreSkip int
	// InputRate is the rate of the original input, informational only.
	InputRate uint32
	// OutputGain is in Q7.8 dB.
	OutputGain    int16
	MappingFamily uint8
}

// ParseHead decodes an OpusHead packet.
func ParseHead(data []byte) (Head, error) {
	if !bytes.HasPrefix(data, headMagic) {
		return Head{}, ErrNotOpusHead
	}
	if len(data) < HeadSize {
		return Head{}, fmt.Errorf("%w: %d bytes", ErrShortHead, len(data))
	}

	h := Head{
		Version:       data[8],
		Channels:      int(data[9]),
		PreSkip:       int(binary.LittleEndian.Uint16(data[10:12])),
		InputRate:     binary.LittleEndian.Uint32(data[12:16]),
		OutputGain:    int16(binary.LittleEndian.Uint16(data[16:18])),
		MappingFamily: data[18],
	}

	// Major version 0 only; minor versions stay compatible.
	if h.Version>>4 != 0 {
		return Head{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.MappingFamily != 0 {
		return Head{}, fmt.Errorf("%w: %d", ErrUnsupportedMapping, h.MappingFamily)
	}
	if h.Channels < 1 || h.Channels > 2 {
		return Head{}, fmt.Errorf("%w: %d channels for family 0", ErrUnsupportedMapping, h.Channels)
	}

	return h, nil
}

// Bytes encodes h as a mapping family 0 OpusHead packet.
func (h Head) Bytes() []byte {
	out := make([]byte, HeadSize)
	copy(out, headMagic)
	out[8] = h.Version
	out[9] = byte(h.Channels)
	binary.LittleEndian.PutUint16(out[10:12], uint16(h.PreSkip))
	binary.LittleEndian.PutUint32(out[12:16], h.InputRate)
	binary.LittleEndian.PutUint16(out[16:18], uint16(h.OutputGain))
	out[18] = h.MappingFamily
	return out
}

// IsHead reports whether data starts like an identification header.
func IsHead(data []byte) bool { return bytes.HasPrefix(data, headMagic) }

// IsTags reports whether data is a comment header.
func IsTags(data []byte) bool { return bytes.HasPrefix(data, tagsMagic) }
