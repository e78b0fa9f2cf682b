// SPDX-License-Identifier: EPL-2.0

// Package opusdec decodes Ogg Opus files into 16-bit stereo WAV files.
//
// The decoder is a streaming pipeline: the Ogg container is demultiplexed
// page by page, every Opus packet is decoded, the encoder delay (pre-skip)
// is trimmed, the 48 kHz output is resampled to the requested rate, noise
// shaped down to 16 bits and written to the WAV file as it comes. Neither
// the input nor the output is ever held in memory as a whole.
//
// # Quick Start
//
//	stats, err := opusdec.ConvertFile("in.opus", "out.wav", opusdec.DefaultConfig())
//	if err != nil {
//	    // out.wav was removed
//	}
//	fmt.Println(stats.Frames, "frames written")
//
// # Configuration
//
// DefaultConfig returns 44.1 kHz output, the cubic resampler and the
// libopus decoder. Every setting of pipeline.Config can be changed before
// the call:
//
//	cfg := opusdec.DefaultConfig()
//	cfg.Rate = 48000
//	cfg.NewResampler = resample.Factory(resample.QualityHigh)
//
// # Package Organization
//
//   - ogg: page parsing, resynchronisation and packet reassembly
//   - formats/oggopus: OpusHead and TOC parsing; libopus: the decoder
//   - resample: cubic and polyphase sample rate converters
//   - dither: noise-shaped quantization to int16
//   - pipeline: the per-stream state machine and the page driver
//   - formats/wav: the streaming WAV writer and reader
//   - compare: the wavdiff comparison used to check decoder output
//
// # Output Length
//
// The output of every stream ends exactly at its last granule position,
// converted to the output rate. Chained streams are appended one after the
// other.
package opusdec
