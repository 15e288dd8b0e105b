// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request and response types of the HTTP API.

Types carry huma struct tags, which drive both request binding and the
generated OpenAPI schema:

	type GreetingInput struct {
		Name string `query:"name"`
	}

A []byte Body is written to the client as-is, with the Content-Type taken
from the ContentType header field.
*/
package models
