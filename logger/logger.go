// Package logger configures the process-wide zerolog logger. Views print
// to stdout; diagnostics go to stderr so piping the catalog output stays
// clean.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a console logger on stderr. Warn level by default; debug
// mode lowers it to debug.
func Setup(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
