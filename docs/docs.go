// Package docs carries the embedded OpenAPI document published at /api-docs.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
