// Package logging provides structured logging with file output support.
// It uses environment variables for configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerCloser wraps a logger and provides a Close method for cleanup
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the log file, if the logger owns one
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// ParseLevel maps a DIS8080_LOG_LEVEL value to a log level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLoggerWithWriter creates a new logger writing to w. The writer is not
// closed by Close.
func NewLoggerWithWriter(w io.Writer) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           ParseLevel(os.Getenv("DIS8080_LOG_LEVEL")),
	})

	prefix := os.Getenv("DIS8080_LOG_PREFIX")
	if prefix == "" {
		prefix = "dis8080 "
	}

	return &LoggerCloser{Logger: lg.WithPrefix(prefix)}
}

// NewLogger creates a new logger based on environment variables
// DIS8080_LOG_LEVEL: debug, info, warn, error (default: info)
// DIS8080_LOG_PREFIX: prefix for log messages (default: "dis8080 ")
// DIS8080_LOG_TO_FILE: when set to "1", logs to a timestamped file instead of stderr
func NewLogger() *LoggerCloser {
	if os.Getenv("DIS8080_LOG_TO_FILE") == "1" {
		timestamp := time.Now().Format("20060102-150405")
		logFile := fmt.Sprintf("dis8080-%s-debug.log", timestamp)

		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			lc := NewLoggerWithWriter(f)
			lc.closer = f
			return lc
		}
		// If file creation fails, fall back to stderr
	}

	return NewLoggerWithWriter(os.Stderr)
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return os.Getenv("DIS8080_LOG_LEVEL") == "debug"
}
