// SPDX-License-Identifier: MIT

// Package telemetry builds the structured logger shared by drawsim
// components.
package telemetry

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/drawsim/config"
)

// LogFormat selects the logger output encoding.
type LogFormat int

const (
	LogFormatUndefined LogFormat = iota
	LogFormatJSON
	LogFormatPretty
)

// ParseLogFormat maps "json"/"pretty" (any case) to a LogFormat.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return LogFormatJSON
	case "pretty":
		return LogFormatPretty
	default:
		return LogFormatUndefined
	}
}

// NewLogger returns a logger writing to stdout at the given level.
// An unknown level falls back to info, an unknown format to JSON.
func NewLogger(level, format string) zerolog.Logger {
	return newLogger(os.Stdout, level, ParseLogFormat(format))
}

// FromConfig returns the logger described by cfg, tagged with the service
// name. Packages add their own "component" field on top.
func FromConfig(cfg config.Config, service string) zerolog.Logger {
	return NewLogger(cfg.LogLevel, cfg.LogFormat).With().Str("service", service).Logger()
}

func newLogger(out io.Writer, level string, format LogFormat) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := out
	if format == LogFormatPretty {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
