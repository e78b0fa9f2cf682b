// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		samples    []int16
	}{
		{"mono", 8000, 1, []int16{0, 100, -100, 200, -200}},
		{"stereo", 44100, 2, []int16{1, 2, 3, 4}},
		{"empty", 16000, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WriteWAV16(buf, tt.sampleRate, tt.channels, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			h, err := ParseHeader(buf.Bytes())
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}
			want := Header{
				SampleRate:    tt.sampleRate,
				Channels:      tt.channels,
				BitsPerSample: 16,
				DataSize:      uint32(len(tt.samples) * 2),
			}
			if h != want {
				t.Errorf("header = %+v, want %+v", h, want)
			}
			if buf.Len() != HeaderSize+len(tt.samples)*2 {
				t.Errorf("file size = %d, want %d", buf.Len(), HeaderSize+len(tt.samples)*2)
			}
		})
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 1, []int16{0x0102, -2}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()[HeaderSize:]
	if data[0] != 0x02 || data[1] != 0x01 {
		t.Errorf("first sample bytes = %x, want little-endian 0201", data[:2])
	}
	if got := int16(binary.LittleEndian.Uint16(data[2:])); got != -2 {
		t.Errorf("second sample = %d, want -2", got)
	}
}

func TestWriteWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	// More than one internal chunk.
	samples := make([]int16, 3*8192+17)
	for i := range samples {
		samples[i] = int16(i)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 48000, 1, samples); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()[HeaderSize:]
	for i, want := range samples {
		if got := int16(binary.LittleEndian.Uint16(data[2*i:])); got != want {
			t.Fatalf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWriteWAV16_PartialFrame(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(new(bytes.Buffer), 8000, 2, []int16{1, 2, 3}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("WriteWAV16() error = %v, want ErrPartialFrame", err)
	}
}
