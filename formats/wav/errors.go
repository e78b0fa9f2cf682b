// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only 16, 24 and 32-bit integer PCM supported")
	ErrPartialFrame         = errors.New("sample count is not a multiple of channels")
	ErrFinalize             = errors.New("finalizing WAV header")
	ErrClosed               = errors.New("WAV writer is closed")
)
