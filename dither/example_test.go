// SPDX-License-Identifier: EPL-2.0

package dither_test

import (
	"fmt"

	"github.com/ik5/opusdec/dither"
)

func ExampleShaper_Quantize() {
	sh := dither.NewShaper(dither.NewRand(dither.DefaultSeed))

	out := make([]int16, 8)
	sh.Quantize(out, make([]float32, 8))

	fmt.Println(out)
	// Output: [0 0 0 0 -1 0 2 0]
}
