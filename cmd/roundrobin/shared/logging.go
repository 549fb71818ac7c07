// Package shared holds setup code common to the roundrobin subcommands.
package shared

import (
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// SetupLogger returns a console zerolog logger on stderr, keeping stdout
// free for match progress and rendered output.
func SetupLogger(debug bool) zerolog.Logger {
	return NewLogger(os.Stderr, debug)
}

// NewLogger builds the console logger on an arbitrary writer.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SetupViewerLogger returns the charm logger used inside the terminal UI.
// While the UI owns the screen, only errors are worth surfacing.
func SetupViewerLogger(debug bool) *charmlog.Logger {
	level := charmlog.ErrorLevel
	if debug {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
