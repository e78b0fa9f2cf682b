// SPDX-License-Identifier: EPL-2.0

package oggopus

import "errors"

var (
	ErrNotOpusHead        = errors.New("not an OpusHead packet")
	ErrShortHead          = errors.New("OpusHead packet too short")
	ErrUnsupportedVersion = errors.New("unsupported OpusHead version")
	ErrUnsupportedMapping = errors.New("unsupported channel mapping family")
	ErrInvalidPacket      = errors.New("invalid opus packet")
)
