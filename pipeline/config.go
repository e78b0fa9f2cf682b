// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"

	"github.com/ik5/opusdec/dither"
	"github.com/ik5/opusdec/ogg"
	"github.com/ik5/opusdec/resample"
	"github.com/rs/zerolog"
)

// Channels is the number of output channels. Decoders are asked for stereo
// whatever the stream carries.
const Channels = 2

const (
	DefaultRate        = 44100
	DefaultChunkFrames = 1024
)

// Decoder turns one compressed packet into interleaved float PCM and returns
// the number of frames written. A nil packet reports a lost packet.
type Decoder interface {
	Decode(packet []byte, pcm []float32) (int, error)
}

// Quantizer converts float PCM to 16-bit samples.
type Quantizer interface {
	Quantize(dst []int16, src []float32)
}

// Sink receives interleaved 16-bit output frames.
type Sink interface {
	WriteFrames(pcm []int16) error
}

// Config holds the settings and collaborator factories of a pipeline. The
// factories are called once per logical stream.
type Config struct {
	// Rate is the output sample rate.
	Rate int
	// ChunkFrames bounds the frames produced per resampler call.
	ChunkFrames int
	// ReadSize is the number of input bytes read per iteration.
	ReadSize int
	// ResyncBudget is how many bytes of garbage are skipped before the
	// input is declared unparseable.
	ResyncBudget int
	// Seed starts the dither generator of every stream.
	Seed uint32
	// Strict turns decode errors into fatal errors.
	Strict bool

	Logger zerolog.Logger

	NewDecoder   func() (Decoder, error)
	NewResampler func(channels, inRate, outRate int) (resample.Resampler, error)
	NewQuantizer func(seed uint32) Quantizer
}

// DefaultConfig returns a Config with every setting at its default. The
// decoder factory is left nil: the caller supplies the codec.
func DefaultConfig() Config {
	return Config{
		Rate:         DefaultRate,
		ChunkFrames:  DefaultChunkFrames,
		ReadSize:     ogg.DefaultReadSize,
		ResyncBudget: ogg.DefaultResyncBudget,
		Seed:         dither.DefaultSeed,
		Logger:       zerolog.Nop(),
		NewResampler: resample.Factory(resample.QualityCubic),
		NewQuantizer: NewShaper,
	}
}

// NewShaper is the default Quantizer factory.
func NewShaper(seed uint32) Quantizer {
	return dither.NewShaper(dither.NewRand(seed))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Rate <= 0:
		return fmt.Errorf("%w: rate %d", ErrInvalidConfig, c.Rate)
	case c.ChunkFrames <= 0:
		return fmt.Errorf("%w: chunk %d", ErrInvalidConfig, c.ChunkFrames)
	case c.ReadSize <= 0:
		return fmt.Errorf("%w: read size %d", ErrInvalidConfig, c.ReadSize)
	case c.ResyncBudget <= 0:
		return fmt.Errorf("%w: resync budget %d", ErrInvalidConfig, c.ResyncBudget)
	case c.NewDecoder == nil:
		return fmt.Errorf("%w: no decoder factory", ErrInvalidConfig)
	case c.NewResampler == nil:
		return fmt.Errorf("%w: no resampler factory", ErrInvalidConfig)
	case c.NewQuantizer == nil:
		return fmt.Errorf("%w: no quantizer factory", ErrInvalidConfig)
	}
	return nil
}
