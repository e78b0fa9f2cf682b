// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample arithmetic shared by the resampler and the
// format decoders.
package utils
