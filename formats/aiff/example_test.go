// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/opusdec/formats/aiff"
)

// Example_invalidInput shows how a non-AIFF input is reported.
func Example_invalidInput() {
	_, err := aiff.Decoder{}.Decode(strings.NewReader("RIFF....WAVE"))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("rejected:", err)
	}
	// Output: rejected: not an AIFF file
}
