// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/opusdec/pipeline"
	"github.com/ik5/opusdec/resample"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Rate != 44100 || cfg.Quality != "cubic" || cfg.Seed != 22222 || cfg.Chunk != 1024 {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "opusdec.yaml")
	data := "rate: 48000\nquality: high\nstrict: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Rate != 48000 || cfg.Quality != "high" || !cfg.Strict {
		t.Errorf("LoadFile() = %+v, want rate 48000, quality high, strict", cfg)
	}
	if cfg.Chunk != 1024 {
		t.Errorf("Chunk = %d, want the default kept", cfg.Chunk)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rate: [not a number\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Default().LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) error = nil")
	}
	if err := Default().LoadFile(bad); err == nil {
		t.Error("LoadFile(bad yaml) error = nil")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.LoadEnv(env(map[string]string{
		"OPUSDEC_RATE":      "22050",
		"OPUSDEC_SEED":      "7",
		"OPUSDEC_STRICT":    "true",
		"OPUSDEC_QUALITY":   "high",
		"OPUSDEC_READ_SIZE": " 512 ",
	}))
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if cfg.Rate != 22050 || cfg.Seed != 7 || !cfg.Strict || cfg.Quality != "high" || cfg.ReadSize != 512 {
		t.Errorf("LoadEnv() = %+v", cfg)
	}
}

func TestLoadEnv_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
	}{
		{"rate", map[string]string{"OPUSDEC_RATE": "fast"}},
		{"seed", map[string]string{"OPUSDEC_SEED": "-1"}},
		{"strict", map[string]string{"OPUSDEC_STRICT": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Default().LoadEnv(env(tt.vars)); !errors.Is(err, ErrInvalid) {
				t.Errorf("LoadEnv() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	malformed := filepath.Join(dir, ".env")
	if err := os.WriteFile(malformed, []byte("OPUSDEC_RATE\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := loadDotenv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("loadDotenv(missing) error = %v, want nil", err)
	}
	if err := loadDotenv(malformed); err == nil {
		t.Error("loadDotenv(malformed) error = nil, want parse error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"rate", func(c *Config) { c.Rate = 0 }},
		{"chunk", func(c *Config) { c.Chunk = -5 }},
		{"read size", func(c *Config) { c.ReadSize = 0 }},
		{"budget", func(c *Config) { c.ResyncBudget = 0 }},
		{"quality", func(c *Config) { c.Quality = "best" }},
		{"log level", func(c *Config) { c.LogLevel = "shout" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Rate = 48000
	cfg.Quality = "HIGH"
	cfg.Seed = 1
	cfg.Strict = true

	pc := pipeline.DefaultConfig()
	if err := cfg.Apply(&pc); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if pc.Rate != 48000 || pc.Seed != 1 || !pc.Strict {
		t.Errorf("Apply() = rate %d seed %d strict %v", pc.Rate, pc.Seed, pc.Strict)
	}

	rs, err := pc.NewResampler(2, 48000, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rs.(*resample.Soxr); !ok {
		t.Errorf("NewResampler() = %T, want *resample.Soxr", rs)
	}
}
