// Package schemas holds the embedded JSON Schema documents shipped with
// readmecheck.
package schemas

import _ "embed"

// ProfileSchemaJSON is the JSON Schema for .readmecheck.yaml profile files.
//
//go:embed profile.schema.json
var ProfileSchemaJSON string
