// SPDX-License-Identifier: EPL-2.0

// Package compare measures how far two decoded audio files are apart.
//
// It is the check used on decoder output: two renderings of the same
// stream are read as 16-bit stereo and compared frame by frame over their
// common length. For each channel the report gives the mean squared
// difference, the squared mean difference (their difference is the
// variance) and a histogram of the squared differences:
//
//	report, err := compare.Files(compare.DefaultRegistry(), "a.wav", "b.wav")
//	report.WriteTo(os.Stdout)
//
// prints
//
//	diff.left = 0.5000000000 - 0.000000000
//	0	2
//	1	2
//
// Inputs may be WAV, AIFF, MP3 or Ogg Vorbis, chosen by file extension.
package compare
