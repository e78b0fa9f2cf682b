// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes a complete 16-bit PCM WAV. samples are interleaved and
// must hold whole frames.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 || len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	h := Header{
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: 16,
		DataSize:      uint32(len(samples) * 2),
	}

	// Write header in one operation
	if _, err := w.Write(h.Bytes()); err != nil {
		return fmt.Errorf("%w", err)
	}

	// For better performance with large files, write in chunks
	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
