// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware.

# Request Logging

Wrap a handler with request logging:

	handler := middleware.WithLogging(mux)

Logs request start (method, path, remote) at trace level and completion
(method, path, status, duration_ms) at info level.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the remote attribute of request logs.
*/
package middleware
