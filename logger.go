package governor

import (
	"log/slog"

	"github.com/gogpu/governor/internal/logx"
)

// SetLogger configures the logger for governor and all its sub-packages.
// By default, governor produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by governor:
//   - [slog.LevelInfo]: lifecycle events (device detected, tier resolved)
//   - [slog.LevelWarn]: non-fatal issues (probe failure, metrics write skipped)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	governor.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logx.SetLogger(l)
}

// Logger returns the current logger used by governor.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
