// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of the canonical RIFF/WAVE PCM header.
const HeaderSize = 44

const pcmFormat = 1

// Header is the canonical 44-byte PCM header: a RIFF chunk holding one fmt
// chunk and one data chunk.
type Header struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// DataSize is the size of the data chunk payload in bytes.
	DataSize uint32
}

// RIFFSize is the value of the RIFF chunk size field.
func (h Header) RIFFSize() uint32 { return HeaderSize - 8 + h.DataSize }

func (h Header) BlockAlign() int { return h.Channels * h.BitsPerSample / 8 }

func (h Header) ByteRate() int { return h.SampleRate * h.BlockAlign() }

// Bytes encodes the header.
func (h Header) Bytes() []byte {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], h.RIFFSize())
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(h.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(h.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(h.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(h.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(h.BitsPerSample))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], h.DataSize)

	return header
}

// ParseHeader decodes a canonical header. It rejects files whose fmt chunk
// is not followed directly by the data chunk, and files whose RIFF size does
// not match the data size.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrNotWavFile, len(data))
	}
	if !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(data[12:16], []byte("fmt ")) ||
		binary.LittleEndian.Uint32(data[16:20]) != 16 ||
		!bytes.Equal(data[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavLayout
	}
	if binary.LittleEndian.Uint16(data[20:22]) != pcmFormat {
		return Header{}, ErrUnsupportedBitDepth
	}

	h := Header{
		Channels:      int(binary.LittleEndian.Uint16(data[22:24])),
		SampleRate:    int(binary.LittleEndian.Uint32(data[24:28])),
		BitsPerSample: int(binary.LittleEndian.Uint16(data[34:36])),
		DataSize:      binary.LittleEndian.Uint32(data[40:44]),
	}

	if riff := binary.LittleEndian.Uint32(data[4:8]); riff != h.RIFFSize() {
		return Header{}, fmt.Errorf("%w: RIFF size %d for %d data bytes", ErrUnsupportedWavLayout, riff, h.DataSize)
	}

	return h, nil
}
