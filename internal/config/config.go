// SPDX-License-Identifier: EPL-2.0

// Package config loads the settings of the opusdec command.
//
// Settings are layered: defaults first, then an optional YAML file, then
// OPUSDEC_* environment variables (a .env file in the working directory is
// loaded into the environment first). Command line flags are applied last
// by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/ik5/opusdec/dither"
	"github.com/ik5/opusdec/ogg"
	"github.com/ik5/opusdec/pipeline"
	"github.com/ik5/opusdec/resample"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// EnvPrefix starts the name of every environment variable read.
const EnvPrefix = "OPUSDEC_"

// ErrInvalid indicates a setting with an unusable value.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting of a conversion.
type Config struct {
	Rate         int    `yaml:"rate"`
	Quality      string `yaml:"quality"`
	Seed         uint32 `yaml:"seed"`
	Chunk        int    `yaml:"chunk"`
	ReadSize     int    `yaml:"read_size"`
	ResyncBudget int    `yaml:"resync_budget"`
	Strict       bool   `yaml:"strict"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Rate:         pipeline.DefaultRate,
		Quality:      string(resample.QualityCubic),
		Seed:         dither.DefaultSeed,
		Chunk:        pipeline.DefaultChunkFrames,
		ReadSize:     ogg.DefaultReadSize,
		ResyncBudget: ogg.DefaultResyncBudget,
		LogLevel:     "warn",
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := loadDotenv(".env"); err != nil {
		return nil, err
	}

	if err := cfg.LoadEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotenv loads the .env file at path into the environment. A missing
// file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadFile merges the YAML file at path into c. Keys absent from the file
// keep their value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

// LoadEnv merges OPUSDEC_* variables into c. lookup is os.LookupEnv outside
// of tests.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"RATE", &c.Rate},
		{"CHUNK", &c.Chunk},
		{"READ_SIZE", &c.ReadSize},
		{"RESYNC_BUDGET", &c.ResyncBudget},
	}
	for _, v := range ints {
		s, ok := lookup(EnvPrefix + v.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, v.key, s)
		}
		*v.dst = n
	}

	if s, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalid, EnvPrefix, s)
		}
		c.Seed = uint32(n)
	}

	if s, ok := lookup(EnvPrefix + "STRICT"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %sSTRICT=%q", ErrInvalid, EnvPrefix, s)
		}
		c.Strict = b
	}

	if s, ok := lookup(EnvPrefix + "QUALITY"); ok {
		c.Quality = s
	}
	if s, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = s
	}

	return nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Rate <= 0:
		return fmt.Errorf("%w: rate %d", ErrInvalid, c.Rate)
	case c.Chunk <= 0:
		return fmt.Errorf("%w: chunk %d", ErrInvalid, c.Chunk)
	case c.ReadSize <= 0:
		return fmt.Errorf("%w: read size %d", ErrInvalid, c.ReadSize)
	case c.ResyncBudget <= 0:
		return fmt.Errorf("%w: resync budget %d", ErrInvalid, c.ResyncBudget)
	}

	if _, err := resample.ParseQuality(c.Quality); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}

	return nil
}

// Apply copies the settings onto a pipeline configuration.
func (c *Config) Apply(pc *pipeline.Config) error {
	q, err := resample.ParseQuality(c.Quality)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	pc.Rate = c.Rate
	pc.ChunkFrames = c.Chunk
	pc.ReadSize = c.ReadSize
	pc.ResyncBudget = c.ResyncBudget
	pc.Seed = c.Seed
	pc.Strict = c.Strict
	pc.NewResampler = resample.Factory(q)

	return nil
}
