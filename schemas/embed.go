// Package schemas embeds the JSON Schema files and registers them with the
// config package on import. CLI entry points should import this package with
// a blank identifier: import _ "github.com/project-gos/gosctl/schemas"
package schemas

import (
	"embed"

	"github.com/project-gos/gosctl/internal/config"
)

//go:embed gosctl-v1.schema.json
var fs embed.FS

func init() {
	data, err := fs.ReadFile("gosctl-v1.schema.json")
	if err != nil {
		panic("schemas: failed to read embedded gosctl-v1.schema.json: " + err.Error())
	}
	config.SetSchema(data)
}
