// SPDX-License-Identifier: EPL-2.0

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug) error = %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("GlobalLevel() = %v, want debug", zerolog.GlobalLevel())
	}

	if err := SetLevel("loud"); err == nil {
		t.Error("SetLevel(loud) error = nil, want error")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf)
	logger.Error().Str("file", "in.opus").Msg("cannot decode")

	out := buf.String()
	if !strings.Contains(out, "cannot decode") || !strings.Contains(out, "in.opus") {
		t.Errorf("console output = %q, want message and field", out)
	}
}
