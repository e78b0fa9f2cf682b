// SPDX-License-Identifier: EPL-2.0

// Package pipeline turns an Ogg Opus bitstream into 16-bit PCM frames.
//
// Every logical stream runs through the same steps: the Opus decoder
// produces 48 kHz float frames, the pre-skip is dropped from the front, the
// rest is resampled to the output rate, noise shaped to int16 and handed to
// a Sink. The granule position of each page caps how much output the stream
// may have produced by then, so the output ends exactly where the encoder
// said it does.
//
// # Driving a file
//
//	cfg := pipeline.DefaultConfig()
//	cfg.NewDecoder = func() (pipeline.Decoder, error) { return libopus.New(pipeline.Channels) }
//
//	drv, err := pipeline.NewDriver(wavWriter, cfg)
//	stats, err := drv.Run(file)
//
// Run reads one page per iteration. Streams that follow each other (chained
// Ogg) are decoded in order into the same Sink, each with fresh state.
//
// # Single streams
//
// StreamDecoder holds the state of one logical stream and can be fed
// packets directly. StreamDecoders share nothing, so separate streams can
// be decoded on separate goroutines.
//
// # Errors
//
// A packet the decoder rejects is reported as a *PacketError, logged and
// concealed. With Config.Strict it stops the run instead.
package pipeline
