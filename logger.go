package displaylist

import (
	"log/slog"

	"github.com/gogpu/displaylist/internal/dlog"
)

// SetLogger configures the logger for displaylist and all its sub-packages.
// By default, displaylist produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by displaylist:
//   - [slog.LevelDebug]: elided operations and culling decisions
//   - [slog.LevelWarn]: protocol misuse (unbalanced saves, nil nested lists,
//     mesh sections written twice)
//
// Example:
//
//	displaylist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	dlog.Set(l)
}

// Logger returns the current logger used by displaylist.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return dlog.L()
}
