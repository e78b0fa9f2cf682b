// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF (Audio Interchange File Format) stores big-endian integer PCM.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth or ErrUnsupportedAiffLayout
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// Samples come out as interleaved int16. 8-bit files are widened, 24 and
// 32-bit files are narrowed by dropping the low bits.
//
// # Seeking
//
// The go-audio decoder needs an io.ReadSeeker. Any other reader is read
// into memory first.
package aiff
