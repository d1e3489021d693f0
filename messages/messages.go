// Package messages embeds the per-locale message catalogs. Each file is named
// after its locale code; the format follows the extension (.json, .yml, .yaml).
package messages

import "embed"

//go:embed *.json
var FS embed.FS
