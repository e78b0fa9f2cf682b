// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"github.com/ik5/opusdec/audio"
	"github.com/ik5/opusdec/formats/aiff"
	"github.com/ik5/opusdec/formats/mp3"
	"github.com/ik5/opusdec/formats/vorbis"
	"github.com/ik5/opusdec/formats/wav"
)

// DefaultRegistry returns a registry with every decoder of this module,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}
