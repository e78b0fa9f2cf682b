// SPDX-License-Identifier: EPL-2.0

package opusdec

import "errors"

var (
	// ErrOpenInput indicates the input file could not be opened.
	ErrOpenInput = errors.New("cannot open input")

	// ErrCreateOutput indicates the output file could not be created.
	ErrCreateOutput = errors.New("cannot create output")
)
