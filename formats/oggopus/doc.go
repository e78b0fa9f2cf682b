// SPDX-License-Identifier: EPL-2.0

// Package oggopus understands the Opus-in-Ogg mapping.
//
// The first packet of an Opus logical stream is the identification header
// ("OpusHead"), the second is the comment header ("OpusTags"). Every later
// packet is audio. All Opus audio is timed at 48 kHz, whatever rate the
// encoder was fed.
//
// # Identification Header
//
// ParseHead decodes the fixed 19-byte part of OpusHead:
//
//	head, err := oggopus.ParseHead(pkt.Data)
//	if err != nil {
//	    // ErrNotOpusHead, ErrShortHead, ErrUnsupportedVersion or
//	    // ErrUnsupportedMapping
//	}
//	skip := head.PreSkip // samples at 48 kHz to drop from the front
//
// Only channel mapping family 0 (mono or stereo, one Opus stream) is
// accepted.
//
// # Packet Durations
//
// FrameSamples and PacketSamples read the TOC byte of an audio packet and
// report how many 48 kHz samples it decodes to, without decoding it.
//
// The decoder itself lives in the libopus subpackage, which needs cgo.
package oggopus
