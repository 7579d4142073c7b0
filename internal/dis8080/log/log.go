// Package log installs the process-wide slog logger and recovers panics.
package log

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"

	"dis8080/internal/logging"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	logger      *logging.LoggerCloser
)

// Setup routes slog through the charm logger. The first call wins.
func Setup(debug bool) {
	initOnce.Do(func() {
		logger = logging.NewLogger()
		if debug {
			logger.SetLevel(charmlog.DebugLevel)
			logger.SetReportCaller(true)
		}

		slog.SetDefault(slog.New(logger.Logger))
		initialized.Store(true)
	})
}

func Initialized() bool {
	return initialized.Load()
}

// Close releases the log file, if any.
func Close() error {
	if logger == nil {
		return nil
	}
	return logger.Close()
}

func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error(fmt.Sprintf("Panic in %s", name),
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if cleanup != nil {
			cleanup()
		}
	}
}
