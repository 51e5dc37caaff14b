// Package logging sets up the process logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stdout. The logger is built
// once in main and handed to components that need it; verbose enables
// debug-level output.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
