package shared

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output
func SetupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SetupLevelLogger is SetupLogger with a named level ("debug", "info", ...).
// debug overrides the name.
func SetupLevelLogger(level string, debug bool) (zerolog.Logger, error) {
	if debug {
		return SetupLogger(true), nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return SetupLogger(false).Level(lvl), nil
}

// FileLoggers writes both log flavours to one file while a TUI owns the
// terminal.
type FileLoggers struct {
	Charm *log.Logger
	Zero  zerolog.Logger
	file  io.Closer
}

// Close closes the log file
func (l *FileLoggers) Close() error {
	return l.file.Close()
}

// SetupFileLoggers opens path for appending and returns loggers writing to it.
func SetupFileLoggers(path string, debug bool) (*FileLoggers, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	charmLevel, zeroLevel := log.InfoLevel, zerolog.InfoLevel
	if debug {
		charmLevel, zeroLevel = log.DebugLevel, zerolog.DebugLevel
	}

	return &FileLoggers{
		Charm: log.NewWithOptions(f, log.Options{
			Level:           charmLevel,
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
		}),
		Zero: zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.TimeOnly}).
			Level(zeroLevel).
			With().
			Timestamp().
			Logger(),
		file: f,
	}, nil
}
