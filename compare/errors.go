// SPDX-License-Identifier: EPL-2.0

package compare

import "errors"

// ErrNoFrames indicates one of the inputs holds no audio.
var ErrNoFrames = errors.New("nothing to compare")
