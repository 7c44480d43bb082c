package prism

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	if lvl, ok := levelFromEnv(); ok {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		return
	}
	SetLogger(nil)
}

// SetLogger routes the package's log output to l. Passing nil silences
// it, which is the default unless PRISM_LOG_LEVEL is set.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	logger.Store(l)
}

// discardHandler mirrors slog.DiscardHandler, which needs go1.24; it
// discards all log output and reports Enabled false for all levels.
type discardHandler struct{}

func (dh discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (dh discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (dh discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler  { return dh }
func (dh discardHandler) WithGroup(name string) slog.Handler        { return dh }

// Logger returns the logger in use. Never nil.
func Logger() *slog.Logger {
	return logger.Load()
}

func levelFromEnv() (slog.Level, bool) {
	text := os.Getenv("PRISM_LOG_LEVEL")
	if text == "" {
		return 0, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return 0, false
	}
	return lvl, true
}

var debugEnabled = sync.OnceValue(func() bool {
	v := os.Getenv("PRISM_DEBUG")
	return v != "" && v != "0"
})

// Debug reports whether extra validation is enabled via PRISM_DEBUG.
// Backends panic on use-after-release and poll driver errors when set.
func Debug() bool {
	return debugEnabled()
}
