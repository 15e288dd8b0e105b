// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Argument Lookup

Two queries run over a snapshot of the argument vector. The vector is
os.Args unmodified, so index 0 is the program name:

	args := os.Args
	cliparse.HasFlag(args, "--help")
	port, err := cliparse.GetValue(args, "--port", strconv.Atoi, "Invalid port")

Flag names match exactly: no prefixes, no case folding, no "--name=value".
Only the first occurrence of a flag counts; the token right after it is
the value, even when that token is another flag.

Types that implement encoding.TextUnmarshaler can skip the parse func:

	lvl, err := cliparse.GetText[logging.Level](args, "--loglevel", "Invalid log level")

# Errors

GetValue fails in this order:

  - ErrNotFound: the flag is absent ("Parameter not found --port")
  - ErrMissingValue: the flag is the last token
  - *ConversionError: the value did not parse; Error returns the caller's
    message and matches ErrConversion with errors.Is

# Configuration

ParseFlags returns a Config:

	cfg, err := cliparse.ParseFlags(os.Args)

CLI Flags:

	--loglevel  Required. error, warn, info, debug, trace (any case) or 1-5
	--help      Sets ShowHelp; nothing else is validated

Environment Variables:

	LISTEN_ADDR  Listen address (default: 0.0.0.0:3000)
	PUBLIC_URL   Base URL advertised in the OpenAPI document (default: http://localhost:3000)
*/
package cliparse
