// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/opusdec/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("WAV", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", "wav", "mp3"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	if got, want := registry.Formats(), []string{"mp3", "ogg", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	registry.Register("wav", wavDecoder)

	tests := []struct {
		path    string
		want    Decoder
		wantErr error
	}{
		{"take1.wav", wavDecoder, nil},
		{"/tmp/TAKE2.WAV", wavDecoder, nil},
		{"song.flac", nil, ErrUnknownFormat},
		{"noext", nil, ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := registry.ForPath(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ForPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ForPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "in.wav")
	if err := os.WriteFile(path, []byte("anything"), 0o600); err != nil {
		t.Fatal(err)
	}

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("bad", &failingDecoder{})

	src, err := registry.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	badPath := filepath.Join(dir, "in.bad")
	if err := os.WriteFile(badPath, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := registry.Open(badPath); err == nil {
		t.Error("Open() with a failing decoder returned no error")
	}

	if _, err := registry.Open(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("Open() of a missing file returned no error")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan struct{})

	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			name := string(rune('a' + i))
			registry.Register(name, &mockDecoder{name: name})
			registry.Get(name)
			registry.Formats()
		}()
	}
	for range 8 {
		<-done
	}

	if n := len(registry.Formats()); n != 8 {
		t.Errorf("registered %d formats, want 8", n)
	}
}
