// SPDX-License-Identifier: EPL-2.0

package opusdec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/opusdec/formats/oggopus/libopus"
	"github.com/ik5/opusdec/formats/wav"
	"github.com/ik5/opusdec/pipeline"
)

// DefaultConfig is pipeline.DefaultConfig with the libopus decoder.
func DefaultConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.NewDecoder = NewDecoder
	return cfg
}

// NewDecoder creates a stereo libopus decoder.
func NewDecoder() (pipeline.Decoder, error) {
	return libopus.New(pipeline.Channels)
}

// Convert decodes the Ogg Opus stream in r into a WAV file written to w.
// A nil cfg.NewDecoder selects libopus.
func Convert(r io.Reader, w io.WriteSeeker, cfg pipeline.Config) (pipeline.Stats, error) {
	if cfg.NewDecoder == nil {
		cfg.NewDecoder = NewDecoder
	}

	if err := cfg.Validate(); err != nil {
		return pipeline.Stats{}, err
	}

	out, err := wav.NewWriter(w, cfg.Rate, pipeline.Channels)
	if err != nil {
		return pipeline.Stats{}, err
	}

	drv, err := pipeline.NewDriver(out, cfg)
	if err != nil {
		return pipeline.Stats{}, err
	}

	stats, runErr := drv.Run(r)
	closeErr := out.Close()

	return stats, errors.Join(runErr, closeErr)
}

// ConvertFile decodes inPath into a WAV file at outPath. The output file is
// removed if the conversion fails.
func ConvertFile(inPath, outPath string, cfg pipeline.Config) (pipeline.Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return pipeline.Stats{}, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return pipeline.Stats{}, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}

	stats, err := Convert(in, out, cfg)
	if err = closeOutput(out, err); err != nil {
		_ = os.Remove(outPath)
		return stats, err
	}

	return stats, nil
}

// closeOutput closes c and reports its error unless err is already set.
func closeOutput(c io.Closer, err error) error {
	if closeErr := c.Close(); err == nil && closeErr != nil {
		return fmt.Errorf("closing output: %w", closeErr)
	}
	return err
}
