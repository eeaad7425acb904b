package templates

import "embed"

// FS contains embedded scaffold payload files rendered by the manifest engine.
//
//go:embed scaffold/*.tmpl scaffold/*/*.tmpl scaffold/*/*/*.tmpl
var FS embed.FS
