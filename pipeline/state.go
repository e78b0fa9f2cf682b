// SPDX-License-Identifier: EPL-2.0

package pipeline

// State is the lifecycle position of a stream.
type State int

const (
	// AwaitingStream waits for the first page of a logical stream.
	AwaitingStream State = iota
	// StreamHeader waits for the identification and comment headers.
	StreamHeader
	// Decoding turns audio packets into output.
	Decoding
	// Draining flushes the resampler after the last packet.
	Draining
	// Closed is reached once a stream ended. A new stream may follow.
	Closed
)

func (s State) String() string {
	switch s {
	case AwaitingStream:
		return "awaiting-stream"
	case StreamHeader:
		return "stream-header"
	case Decoding:
		return "decoding"
	case Draining:
		return "draining"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Stats counts what a run did.
type Stats struct {
	Streams      int
	Pages        int
	IgnoredPages int
	Packets      int
	LostPackets  int
	DecodeErrors int
	// Frames is the number of output frames written.
	Frames int64
}

func (s *Stats) add(o Stats) {
	s.Streams += o.Streams
	s.Pages += o.Pages
	s.IgnoredPages += o.IgnoredPages
	s.Packets += o.Packets
	s.LostPackets += o.LostPackets
	s.DecodeErrors += o.DecodeErrors
	s.Frames += o.Frames
}
