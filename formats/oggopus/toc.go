// SPDX-License-Identifier: EPL-2.0

package oggopus

import "fmt"

// FrameSamples returns the duration in 48 kHz samples of one frame of a
// packet, from its TOC byte.
func FrameSamples(toc byte) int {
	config := int(toc >> 3)
	switch {
	case config < 12:
		// SILK: 10, 20, 40, 60 ms
		return [4]int{480, 960, 1920, 2880}[config&3]
	case config < 16:
		// Hybrid: 10, 20 ms
		return [2]int{480, 960}[config&1]
	default:
		// CELT: 2.5, 5, 10, 20 ms
		return [4]int{120, 240, 480, 960}[config&3]
	}
}

// FrameCount returns the number of frames in a packet.
func FrameCount(packet []byte) (int, error) {
	if len(packet) == 0 {
		return 0, fmt.Errorf("%w: empty packet", ErrInvalidPacket)
	}
	switch packet[0] & 3 {
	case 0:
		return 1, nil
	case 1, 2:
		return 2, nil
	default:
		if len(packet) < 2 {
			return 0, fmt.Errorf("%w: code 3 packet without frame count", ErrInvalidPacket)
		}
		return int(packet[1] & 0x3f), nil
	}
}

// PacketSamples returns the number of 48 kHz samples per channel a packet
// decodes to.
func PacketSamples(packet []byte) (int, error) {
	frames, err := FrameCount(packet)
	if err != nil {
		return 0, err
	}
	n := frames * FrameSamples(packet[0])
	if n > MaxFrameSize {
		return 0, fmt.Errorf("%w: %d samples", ErrInvalidPacket, n)
	}
	return n, nil
}
