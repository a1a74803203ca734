// Package logging builds the zerolog loggers used by the regform CLI.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level. Debug, info
// and warn lines go to w; error and above also go to errW when it differs.
func New(level string, w, errW io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	if errW != nil && errW != w {
		writer = zerolog.MultiLevelWriter(
			LevelWriter{
				Writer: zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339},
				Levels: []zerolog.Level{zerolog.TraceLevel, zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel},
			},
			LevelWriter{
				Writer: zerolog.ConsoleWriter{Out: errW, TimeFormat: time.RFC3339},
				Levels: []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
			},
		)
	}

	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}

// LevelWriter forwards only events whose level is listed.
type LevelWriter struct {
	io.Writer
	Levels []zerolog.Level
}

// WriteLevel implements zerolog.LevelWriter.
func (w LevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	for _, l := range w.Levels {
		if l == level {
			return w.Write(p)
		}
	}
	return len(p), nil
}
