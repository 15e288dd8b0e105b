// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// GreetingInput is the query string of GET /hello
type GreetingInput struct {
	Name string `query:"name" maxLength:"256" doc:"Who to greet" example:"World"`
}

// GreetingOutput is a plain-text greeting
type GreetingOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
