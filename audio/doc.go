// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-audio abstractions shared by the format
// decoders and the comparison tool.
//
// This package contains:
//   - Source interface for 16-bit PCM input
//   - Stereo for presenting mono sources as stereo
//   - ReadAll for collecting a whole source
//   - Format registry for decoder lookup by file extension
//
// # Source Interface
//
// The Source interface is the foundation of audio input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadPCM(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved. ReadPCM returns the number of int16 values
// written, and io.EOF once the stream is finished.
//
// # Channel Layout
//
// Stereo duplicates mono samples into both channels and passes stereo
// through unchanged:
//
//	st, err := audio.NewStereo(source)
//	buf := make([]int16, 4096)
//	n, err := st.ReadPCM(buf)
//
// Sources with more than two channels are rejected with
// ErrUnsupportedChannels.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//
//	src, err := registry.Open("take1.wav") // picked by extension
//	defer src.Close()
//
// Keys are case insensitive. Open returns ErrUnknownFormat for an
// extension nobody registered.
package audio
