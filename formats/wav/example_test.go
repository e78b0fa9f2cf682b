// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/opusdec/formats/wav"
)

// Example_streaming writes a WAV whose length is not known up front.
func Example_streaming() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	f, err := os.Create(filepath.Join(dir, "out.wav"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	w, err := wav.NewWriter(f, 44100, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	for range 3 {
		if err := w.WriteFrames(make([]int16, 2*441)); err != nil {
			fmt.Println(err)
			return
		}
	}
	if err := w.Close(); err != nil {
		fmt.Println(err)
		return
	}

	header := make([]byte, wav.HeaderSize)
	if _, err := f.ReadAt(header, 0); err != nil {
		fmt.Println(err)
		return
	}
	h, err := wav.ParseHeader(header)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Frames: %d\n", w.Frames())
	fmt.Printf("Data: %d bytes\n", h.DataSize)
	// Output:
	// Frames: 1323
	// Data: 5292 bytes
}
