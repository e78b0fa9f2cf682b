// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero rate", func(c *Config) { c.Rate = 0 }, true},
		{"negative chunk", func(c *Config) { c.ChunkFrames = -1 }, true},
		{"zero read size", func(c *Config) { c.ReadSize = 0 }, true},
		{"zero budget", func(c *Config) { c.ResyncBudget = 0 }, true},
		{"no decoder", func(c *Config) { c.NewDecoder = nil }, true},
		{"no resampler", func(c *Config) { c.NewResampler = nil }, true},
		{"no quantizer", func(c *Config) { c.NewQuantizer = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(&fakeDecoder{})
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Rate != 44100 || cfg.ChunkFrames != 1024 || cfg.Seed != 22222 {
		t.Errorf("DefaultConfig() = rate %d chunk %d seed %d", cfg.Rate, cfg.ChunkFrames, cfg.Seed)
	}
	if !errors.Is(cfg.Validate(), ErrInvalidConfig) {
		t.Error("DefaultConfig() without a decoder should not validate")
	}
	if _, err := NewDriver(&memSink{}, cfg); err == nil {
		t.Error("NewDriver() accepted a config without a decoder")
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	tests := map[State]string{
		AwaitingStream: "awaiting-stream",
		StreamHeader:   "stream-header",
		Decoding:       "decoding",
		Draining:       "draining",
		Closed:         "closed",
		State(42):      "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
