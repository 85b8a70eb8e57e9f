// Package logger builds the process-wide zerolog logger with opinionated
// defaults: console output for humans, JSON for machines, optional rotating
// file output.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown values fall
	// back to info.
	Level string

	// Format is "console" or "json". Console is the default; a file sink
	// always uses JSON.
	Format string

	// File, when set, sends output to a size-rotated log file instead of
	// stderr.
	File string
}

// New builds a root logger from the options.
func New(opt Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stderr
	switch {
	case opt.File != "":
		w = &lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	case strings.ToLower(opt.Format) != "json":
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
