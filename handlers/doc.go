// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP API operations.

Operations are registered on a huma.API, which validates input, binds it
into the models types, and records each operation in the OpenAPI document:

	api := humago.New(mux, huma.DefaultConfig("Hello World", "1.0"))
	handlers.RegisterGreeting(api)

# Greeting

	GET /hello?name=Alice  ->  Hello, Alice!
	GET /hello             ->  Hello!

The response is text/plain.
*/
package handlers
