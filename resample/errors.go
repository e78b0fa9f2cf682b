// SPDX-License-Identifier: EPL-2.0

package resample

import "errors"

var (
	ErrInvalidBufSize = errors.New("buffer size must be multiple of channels")
	ErrInvalidRate    = errors.New("sample rate must be positive")
	ErrInvalidChannel = errors.New("channel count must be positive")
	ErrUnknownQuality = errors.New("unknown resampler quality")
)
