// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll reads src to the end and returns its interleaved samples.
//
// bufferSize is the number of samples read per call; it is rounded down to
// whole frames. Non-positive values use src.BufSize().
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm, err := audio.ReadAll(src, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	frames := len(pcm) / src.Channels()
func ReadAll(src Source, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	bufferSize -= bufferSize % src.Channels()
	if bufferSize <= 0 {
		return nil, ErrInvalidDstSize
	}

	var pcm []int16
	buf := make([]int16, bufferSize)

	for {
		n, err := src.ReadPCM(buf)
		if n > 0 {
			pcm = append(pcm, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			return nil, io.ErrNoProgress
		}
	}

	return pcm, nil
}
