// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, a pure Go decoder.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// # Output Format
//
// go-mp3 always produces interleaved 16-bit stereo, so Channels is 2 even
// for mono files. The sample rate is the one stored in the first frame.
package mp3
