// Package logging builds the service's slog loggers and carries the
// request-scoped logger through contexts.
//
// Every logger from New runs attributes through a masq redactor, so
// credentials and the personal fields of a complaint form are replaced
// before they reach the output. Services log failures with the operation
// and identifiers:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "export failed",
//	    slog.String("operation", "Export"),
//	    slog.String("category", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error and falls back to info. format "text" selects the text handler and
// anything else JSON. Debug loggers also report the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog.Level, ignoring case.
// Unknown names give slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
