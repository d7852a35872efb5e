// Package logging builds the zerolog loggers used by the seedmin binary.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

const (
	serviceName = "seedmin"
	timeFormat  = "15:04:05"
)

// New returns a console logger writing to w at the named level. Unknown
// level names fall back to info. A trace logger also lowers the global
// level, which otherwise filters trace events.
func New(w io.Writer, level string) zerolog.Logger {
	lvl := ParseLevel(level)
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    true,
	}).Level(lvl).With().Timestamp().Str("service", serviceName).Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}

	return lvl
}
