// Package http exposes a dictionary registry as a JSON API.
//
// Routes are described by the embedded openapi.yaml, served at /openapi.yaml.
package http
