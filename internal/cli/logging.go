package cli

import (
	"io"

	"github.com/rs/zerolog"
)

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(levelFor(verbosity)).
		With().Timestamp().Logger()
}
