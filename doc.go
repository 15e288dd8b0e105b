// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the simple web server.

The server answers one greeting endpoint and publishes its OpenAPI
document and docs UI.

# Starting the Server

--loglevel is required:

	go run . --loglevel info

Print help and exit:

	go run . --help

A missing or invalid --loglevel prints the error and the help text, then
exits with status 1.

# Configuration

Environment variables, optionally from a .env file in the working
directory:

  - LISTEN_ADDR: listen address (default: 0.0.0.0:3000)
  - PUBLIC_URL: base URL advertised in the OpenAPI document (default: http://localhost:3000)

# Architecture

  - cliparse: argument lookup and configuration
  - logging: log levels and slog setup
  - router: route definitions and OpenAPI config
  - handlers: API operations
  - models: request/response types
  - middleware: request logging
  - server: listen, serve, graceful shutdown

See package documentation for each component.
*/
package main
