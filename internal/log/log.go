// SPDX-License-Identifier: EPL-2.0

// Package log sets up the zerolog logger shared by the command line tools.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = New(os.Stderr)
}

// New returns a console logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}

// SetLevel parses and applies a level name such as "debug" or "warn".
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log.Logger
}

func Error() *zerolog.Event {
	return log.Error()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func With() zerolog.Context {
	return log.With()
}
