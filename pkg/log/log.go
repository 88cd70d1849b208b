package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, using
// level and format names as accepted by [GetLevel] and [GetFormatter].
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, level, formatter), nil
}

// CreateHandler creates a [slog.Handler] backed by a charmbracelet logger.
func CreateHandler(w io.Writer, level log.Level, formatter log.Formatter) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	})
}

// GetLevel parses a log level name. Names used by other loggers are mapped
// to the closest supported level.
func GetLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return log.ErrorLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "debug", "trace":
		return log.DebugLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

// GetFormatter parses a log format name.
func GetFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat, "":
		return log.TextFormatter, nil
	case LogfmtFormat:
		return log.LogfmtFormatter, nil
	case JSONFormat:
		return log.JSONFormatter, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}
