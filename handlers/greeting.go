// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/danielhkuo/simple-web-server/logging"
	"github.com/danielhkuo/simple-web-server/models"
)

const plainText = "text/plain; charset=utf-8"

// RegisterGreeting adds GET /hello to api
func RegisterGreeting(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Say hello",
		Description: "Greets the caller by name, or anonymously when no name is given.",
		Tags:        []string{"Greeting"},
	}, Hello)
}

// Hello handles GET /hello
func Hello(ctx context.Context, input *models.GreetingInput) (*models.GreetingOutput, error) {
	logging.Trace(ctx, "greeting", "name", input.Name)

	return &models.GreetingOutput{
		ContentType: plainText,
		Body:        []byte(Greet(input.Name)),
	}, nil
}

// Greet builds the greeting text. An empty name gets the anonymous form.
func Greet(name string) string {
	if name == "" {
		return "Hello!"
	}
	return "Hello, " + name + "!"
}
