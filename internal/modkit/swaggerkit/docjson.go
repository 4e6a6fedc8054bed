// Package swaggerkit provides OpenAPI swagger UI integration for HTTP services
package swaggerkit

import "net/http"

// docReader is a seam so tests can inject a different spec
var docReader = func() string {
	return `{
  "openapi": "3.0.3",
  "info": {"title": "AI Story Generator API", "version": "1.0.0"},
  "servers": [{"url": "/api"}],
  "paths": {
    "/generate": {"post": {"summary": "Generate a story from a prompt", "responses": {"200": {"description": "OK"}}}},
    "/stories": {
      "get": {"summary": "List saved stories", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Save a story", "responses": {"201": {"description": "Created"}}}
    },
    "/stories/{id}": {
      "get": {"summary": "Fetch one story", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
      "delete": {"summary": "Delete a story", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
    }
  }
}`
}

// serveDocJSON serves the spec so the UI can load
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
