package core

import (
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger replaces the logger used by the drivers and the sweep. A nil
// logger discards everything, which is also the initial state. Clicks,
// toggles and resets log at debug; driver start/stop and sweep summaries at
// info; unknown flag values at warn.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// ParseLevel maps a -log-level flag value to a slog.Level. Unknown names
// resolve to Info and ok=false.
func ParseLevel(name string) (level slog.Level, ok bool) {
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
