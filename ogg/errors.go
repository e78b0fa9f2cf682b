// SPDX-License-Identifier: EPL-2.0

package ogg

import "errors"

var (
	ErrNeedMore       = errors.New("ogg: need more data")
	ErrShortPage      = errors.New("ogg: truncated page")
	ErrInvalidPage    = errors.New("ogg: invalid page")
	ErrBadCRC         = errors.New("ogg: page checksum mismatch")
	ErrNoPacket       = errors.New("ogg: no packet available")
	ErrHole           = errors.New("ogg: hole in page sequence")
	ErrSerialMismatch = errors.New("ogg: page belongs to another stream")
	ErrUnparseable    = errors.New("ogg: unparseable container")
	ErrPacketTooLarge = errors.New("ogg: packet does not fit in one page")
)
