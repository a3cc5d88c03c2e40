//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"evtxview/internal/config"
)

// Log levels accepted in logging.level
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output formats accepted in logging.format
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

// TimeFormat is the console timestamp. Sub-second precision shows how ticks and ingest
// batches interleave.
const TimeFormat = "15:04:05.000"

const componentField = "component"

// Logger interface for application logging
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger represents a logger implementation using zerolog
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a logger writing to stderr
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, os.Stderr)
}

// NewSilentLogger creates a logger that drops everything
func NewSilentLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, io.Discard)
}

// NewLoggerWithOutput creates a logger writing to output. Empty level and format in cfg
// are filled with their defaults.
func NewLoggerWithOutput(cfg *config.Config, output io.Writer) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = InfoLevel
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = ConsoleFormat
	}

	return &AppLogger{
		log: zerolog.New(writerFor(cfg.Logging.Format, output)).
			Level(parseLevel(cfg.Logging.Level)).
			With().
			Timestamp().
			Str("version", config.Version).
			Logger(),
	}
}

// OpenOutput resolves where log lines go: the configured file when set, stderr when
// the terminal is free, otherwise nowhere, since the TUI owns the screen
func OpenOutput(cfg *config.Config, interactive bool) (io.Writer, func() error, error) {
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}

		return f, f.Close, nil
	}

	if interactive {
		return io.Discard, func() error { return nil }, nil
	}

	return os.Stderr, func() error { return nil }, nil
}

// Debug returns a debug level Event for logging debug messages
func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// Info returns an info level Event for logging informational messages
func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Warn returns a warn level Event for logging warning messages
func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Error returns an error level Event for logging error messages
func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent tags every line with the component name
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str(componentField, name).Logger(),
	}
}

// writerFor wraps output in a console writer unless JSON is requested. Colors are only
// used on stderr; log files stay plain.
func writerFor(format string, output io.Writer) io.Writer {
	if output == nil {
		output = os.Stderr
	}

	if format == JSONFormat || output == io.Discard {
		return output
	}

	return newConsoleWriter(output, output != os.Stderr)
}

// newConsoleWriter prints "time LVL [COMPONENT] message key=value"
func newConsoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       noColor,
		TimeFormat:    TimeFormat,
		FieldsExclude: []string{"version", componentField},
		FormatPrepare: func(m map[string]interface{}) error {
			if component, ok := m[componentField].(string); ok {
				m[componentField] = fmt.Sprintf("[%s]", component)
			}

			return nil
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			componentField,
			zerolog.MessageFieldName,
		},
		PartsExclude: []string{zerolog.CallerFieldName},
	}
}

// parseLevel maps logging.level to a zerolog level, falling back to info
func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return l
}
