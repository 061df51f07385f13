// Package logger keeps an slog.Logger in a context.Context and provides
// the application's default handler, backed by github.com/charmbracelet/log.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

var loggerKey = &contextKey{}

// WithLogger returns a copy of ctx carrying l. Retrieve it with FromContext.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored by WithLogger, or DefaultLogger
// when ctx carries none. It never returns nil.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return DefaultLogger()
	}
	return l
}

// DefaultLogger returns an info-level logger writing to stderr
func DefaultLogger() *slog.Logger {
	return New(os.Stderr, log.InfoLevel)
}

// New returns a logger writing to w at the given level
func New(w io.Writer, level log.Level) *slog.Logger {
	return slog.New(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	}))
}

// LevelFor returns the app log level for the debug preference
func LevelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return New(io.Discard, log.FatalLevel)
}

// ParseLevel maps debug, info, warn and error to a log level
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
