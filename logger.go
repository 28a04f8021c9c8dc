package dock

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var loggerPtr atomic.Pointer[log.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

func newNopLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// SetLogger configures the logger used by the dock and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - debug: per-frame statistics when debug mode is on, state transitions
//   - info: configuration reloads
//   - warn: icons that failed to load, rejected configuration values
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *log.Logger {
	return loggerPtr.Load()
}
