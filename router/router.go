// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/danielhkuo/simple-web-server/cliparse"
	"github.com/danielhkuo/simple-web-server/handlers"
	"github.com/danielhkuo/simple-web-server/middleware"
)

const (
	APIPrefix = "/api"
	DocsPath  = APIPrefix + "/docs"
)

func NewRouter(cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// API operations, OpenAPI document and docs UI live under /api
	apiMux := http.NewServeMux()
	api := humago.New(apiMux, APIConfig(cfg))
	handlers.RegisterGreeting(api)
	mux.Handle(APIPrefix+"/", http.StripPrefix(APIPrefix, apiMux))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root goes to the docs UI
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath, http.StatusFound)
	})

	return middleware.WithLogging(mux)
}

// APIConfig describes the API in the OpenAPI document. The advertised server
// is PublicURL plus the /api prefix.
func APIConfig(cfg cliparse.Config) huma.Config {
	config := huma.DefaultConfig("Hello World", "1.0")
	config.Servers = []*huma.Server{
		{URL: strings.TrimSuffix(cfg.PublicURL, "/") + APIPrefix},
	}
	return config
}
