// Package logging configures zerolog for the textkit CLI and console.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level maps a -v count onto a zerolog level: 0 warn, 1 info, 2 debug, 3 and above trace.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2: //nolint:mnd	// debug
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New builds a human-readable logger writing to w (stderr when nil) at the level selected by
// verbosity. Colors are used only on terminals. Debug and trace output also carry the caller.
func New(verbosity int, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(w),
	}

	ctx := zerolog.New(console).Level(Level(verbosity)).With().Timestamp()

	if verbosity >= 2 { //nolint:mnd	// debug and above
		ctx = ctx.Caller()
	}

	return ctx.Logger()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetupLogger installs New(verbosity, w) as the global logger.
// The global level is opened up to trace; each logger's own level does the filtering.
func SetupLogger(verbosity int, w io.Writer) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = New(verbosity, w)

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation at debug level and returns a function that
// logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()

	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
