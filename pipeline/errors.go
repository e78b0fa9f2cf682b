// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStream indicates the input held no Ogg stream at all.
	ErrNoStream = errors.New("no logical stream found")

	// ErrStreamSetup indicates a stream could not be started: a collaborator
	// could not be built or the identification header was rejected.
	ErrStreamSetup = errors.New("stream setup failed")

	// ErrInvalidConfig indicates a Config that failed validation.
	ErrInvalidConfig = errors.New("invalid pipeline config")

	// ErrStreamClosed indicates a packet was handed to a drained stream.
	ErrStreamClosed = errors.New("stream is closed")
)

// PacketError reports a packet the decoder could not decode.
type PacketError struct {
	Serial   uint32
	PacketNo int64
	Err      error
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("stream %08x packet %d: %v", e.Serial, e.PacketNo, e.Err)
}

func (e *PacketError) Unwrap() error { return e.Err }
