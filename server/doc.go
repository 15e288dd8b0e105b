// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package server runs the HTTP server and shuts it down when its context
// ends. main cancels that context on SIGINT or SIGTERM.
package server
