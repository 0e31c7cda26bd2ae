package fontsel

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/fontsel/internal/logging"
)

// loggerPtr stores the package logger. Accessed atomically so that
// SetLogger can be called while resolvers on other goroutines log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.Nop())
}

// SetLogger configures the logger used by resolvers created afterwards
// that were not given one with WithLogger. By default fontsel produces
// no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by fontsel:
//   - [slog.LevelDebug]: list builds, tier decisions
//   - [slog.LevelWarn]: face open failures, no face found for a request
//
// Example:
//
//	fontsel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
