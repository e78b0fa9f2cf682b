// SPDX-License-Identifier: EPL-2.0

// Command wavdiff compares two decoded audio files.
//
// Usage:
//
//	wavdiff <a.wav> <b.wav>
//
// For each channel it prints the mean squared difference, the squared mean
// difference and a histogram of the squared differences. Inputs may be WAV,
// AIFF, MP3 or Ogg Vorbis.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/opusdec/compare"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "wavdiff <a> <b>",
		Short:         "Compare two audio files sample by sample",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := compare.Files(compare.DefaultRegistry(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = report.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
