package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Format selects how log records are written.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseLevel maps a configuration level name onto a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// New builds a logger writing to w in the requested format.
func New(w io.Writer, format Format, level zerolog.Level) Logger {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return NewZerolog(w, level)
}

// NewFromConfig builds a stdout logger from configuration strings.
func NewFromConfig(levelName, format string) (Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	switch Format(strings.ToLower(format)) {
	case "", FormatConsole:
		return New(os.Stdout, FormatConsole, level), nil
	case FormatJSON:
		return New(os.Stdout, FormatJSON, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &ZerologAdapter{logger: zerolog.Nop()}
}
