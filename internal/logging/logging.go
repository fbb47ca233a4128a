package logging

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Init builds a console logger for mrpctl. Unlike a long-running
// server, a single CLI invocation has no rotation concern, so this
// returns the logger value directly rather than reaching for a
// package-global; callers inject it explicitly into mrp.Plan via
// mrp.WithLogger.
func Init(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}
