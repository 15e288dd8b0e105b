// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the server.

# Route Registration

NewRouter returns the complete handler, wrapped in request logging:

	handler := router.NewRouter(cfg)

# Endpoints

	GET /health            - Health check, returns OK
	GET /                  - Redirects to /api/docs
	GET /api/hello         - Greeting (?name=...)
	GET /api/openapi.json  - OpenAPI document (also .yaml)
	GET /api/docs          - Interactive API docs

The /api tree is served by huma on its own http.ServeMux. APIConfig sets
the document title and the server URL built from cfg.PublicURL.
*/
package router
