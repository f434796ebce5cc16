package lanes

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger installs the logger used for dispatch diagnostics. Passing nil
// restores slog.Default. Resolution of the dispatch table is logged at debug
// level, configuration problems at warn level.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
