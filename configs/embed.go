// Package configs embeds the default game configuration files.
package configs

import "embed"

// FS holds the JSON configuration shipped with the binary.
//
//go:embed *.json
var FS embed.FS
