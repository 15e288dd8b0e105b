// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to w that drops records less severe than level.
func New(w io.Writer, level Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level.Slog(),
		ReplaceAttr: renameTrace,
	}))
}

// Setup installs a stderr logger for level as the slog default
func Setup(level Level) *slog.Logger {
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}

// Trace logs at trace severity on the default logger.
func Trace(ctx context.Context, msg string, args ...any) {
	slog.Default().Log(ctx, SlogTrace, msg, args...)
}

func renameTrace(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) != 0 {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == SlogTrace {
		a.Value = slog.StringValue(levelNames[LevelTrace])
	}
	return a
}
