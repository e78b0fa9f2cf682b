// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// It uses github.com/go-audio/wav for both directions.
//
// # Streaming Output
//
// Writer is for output whose length is not known in advance. NewWriter
// writes the 44-byte header immediately, WriteFrames appends samples, and
// Close seeks back to fill in the RIFF and data chunk sizes:
//
//	f, _ := os.Create("out.wav")
//	w, err := wav.NewWriter(f, 44100, 2)
//	for pcm := range blocks {
//	    if err := w.WriteFrames(pcm); err != nil {
//	        // the output is incomplete
//	    }
//	}
//	if err := w.Close(); err != nil {
//	    // errors.Is(err, wav.ErrFinalize): sizes could not be patched
//	}
//
// The destination must be seekable. A pipe accepts the samples but fails on
// Close with ErrFinalize.
//
// # One-Shot Output
//
// WriteWAV16 writes a complete file from samples already in memory:
//
//	err := wav.WriteWAV16(file, 8000, 1, samples)
//
// # Decoding
//
// Decoder turns a WAV file into an audio.Source of 16-bit samples. 24 and
// 32-bit integer files are narrowed to 16 bits:
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// # Header Layout
//
// Header describes the canonical layout:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk header (8 bytes) followed by the samples
//
// ParseHeader only accepts that layout. It is meant for checking files this
// package wrote, not for reading arbitrary WAVs.
package wav
