// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/simple-web-server/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	w := testutil.Serve(mux, testutil.MakeRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRootRedirectsToDocs(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	w := testutil.Serve(mux, testutil.MakeRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusFound)
	assert.Equal(t, DocsPath, w.Header().Get("Location"))
}

func TestHelloEndpoint(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	testCases := []struct {
		path     string
		expected string
	}{
		{"/api/hello", "Hello!"},
		{"/api/hello?name=", "Hello!"},
		{"/api/hello?name=World", "Hello, World!"},
		{"/api/hello?name=Jane%20Doe", "Hello, Jane Doe!"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := testutil.Serve(mux, testutil.MakeRequest("GET", tc.path, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			assert.Equal(t, tc.expected, w.Body.String())
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
		})
	}
}

func TestOpenAPIDocument(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.PublicURL = "https://hello.example.com/"
	mux := NewRouter(cfg)

	w := testutil.Serve(mux, testutil.MakeRequest("GET", "/api/openapi.json", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))

	assert.Equal(t, "Hello World", doc.Info.Title)
	assert.Equal(t, "1.0", doc.Info.Version)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://hello.example.com/api", doc.Servers[0].URL)
	assert.Contains(t, doc.Paths, "/hello")
}

func TestDocsUI(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	w := testutil.Serve(mux, testutil.MakeRequest("GET", DocsPath, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/api/hello"},
		{"DELETE", "/api/hello"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := testutil.Serve(mux, testutil.MakeRequest(tc.method, tc.path, nil))
			testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	mux := NewRouter(testutil.GetTestConfig())

	for _, path := range []string{"/nope", "/api/nope", "/hello"} {
		t.Run(path, func(t *testing.T) {
			w := testutil.Serve(mux, testutil.MakeRequest("GET", path, nil))
			testutil.AssertStatus(t, w, http.StatusNotFound)
		})
	}
}
