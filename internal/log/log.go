// Package log builds the CLI's zerolog logger from configuration.
package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/volcanium/internal/config"
)

// Logger is the zerolog logger used across the CLI.
type Logger = zerolog.Logger

// New returns a logger writing to w at the configured level. Pretty selects the
// human-readable console writer; an unknown level falls back to info.
func New(cfg config.Config, w io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.Logging.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
