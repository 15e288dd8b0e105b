// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging defines the server's log severities and installs the slog
logger that honours them.

# Levels

Five severities, from least to most verbose:

	error (1) < warn (2) < info (3) < debug (4) < trace (5)

ParseLevel accepts either the name, in any case, or its number:

	lvl, err := logging.ParseLevel("debug")

Level implements encoding.TextUnmarshaler, so cliparse.GetText can read it
straight from the command line.

# Logger Setup

Setup installs a text handler on stderr as the slog default:

	logging.Setup(lvl)
	slog.Info("starting up")

Trace has no slog counterpart; it is emitted at slog.LevelDebug-4 and
rendered as TRACE:

	logging.Trace(ctx, "request started", "path", r.URL.Path)
*/
package logging
