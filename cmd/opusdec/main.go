// SPDX-License-Identifier: EPL-2.0

// Command opusdec decodes an Ogg Opus file into a 16-bit stereo WAV file.
//
// Usage:
//
//	opusdec [flags] <input.opus> <output.wav>
//
// Settings come from --config (YAML), OPUSDEC_* environment variables and
// a .env file, and the flags, in increasing order of precedence.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/opusdec/cmd/opusdec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
