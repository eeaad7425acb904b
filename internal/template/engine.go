// Package template renders the embedded GOS scaffold payloads into the
// concrete file set a run applies. Payload content is opaque to the merge
// engine; the only dynamic pieces are the project name and the dev-only
// graph credentials interpolated from configuration.
package template

import (
	"bytes"
	"fmt"
	"path"
	texttemplate "text/template"

	"github.com/project-gos/gosctl/internal/config"
	templatefs "github.com/project-gos/gosctl/templates"
)

// RenderedFile is one templated output artifact. Path is relative to the
// repository root (the target subdirectory prefix is already applied).
type RenderedFile struct {
	Path    string
	Content []byte
}

// Engine renders config-driven scaffold templates into files.
type Engine struct{}

// NewEngine creates a new template engine.
func NewEngine() *Engine {
	return &Engine{}
}

// templateToPath maps each embedded template onto its output path.
// Target is relative to the configured target subdirectory unless Root is
// set, in which case it lands at the repository root.
var templateToPath = []struct {
	TemplatePath string
	OutputPath   string
	Root         bool
}{
	{TemplatePath: "scaffold/core/engines/catma.py.tmpl", OutputPath: "core/engines/catma.py"},
	{TemplatePath: "scaffold/core/engines/updc.py.tmpl", OutputPath: "core/engines/updc.py"},
	{TemplatePath: "scaffold/core/engines/game.py.tmpl", OutputPath: "core/engines/game.py"},
	{TemplatePath: "scaffold/core/schemas/domain.py.tmpl", OutputPath: "core/schemas/domain.py"},
	{TemplatePath: "scaffold/core/scoring/registry.py.tmpl", OutputPath: "core/scoring/registry.py"},
	{TemplatePath: "scaffold/core/spice/v22.py.tmpl", OutputPath: "core/spice/v22.py"},
	{TemplatePath: "scaffold/core/mappers/mapper.py.tmpl", OutputPath: "core/mappers/mapper.py"},
	{TemplatePath: "scaffold/pipeline/ingest/ingest.py.tmpl", OutputPath: "pipeline/ingest/ingest.py"},
	{TemplatePath: "scaffold/pipeline/normalize/normalize.py.tmpl", OutputPath: "pipeline/normalize/normalize.py"},
	{TemplatePath: "scaffold/pipeline/enrich/enrich.py.tmpl", OutputPath: "pipeline/enrich/enrich.py"},
	{TemplatePath: "scaffold/pipeline/graph/neo4j_client.py.tmpl", OutputPath: "pipeline/graph/neo4j_client.py"},
	{TemplatePath: "scaffold/sim/tickloop.py.tmpl", OutputPath: "sim/tickloop.py"},
	{TemplatePath: "scaffold/api/main.py.tmpl", OutputPath: "api/main.py"},
	{TemplatePath: "scaffold/api/schemas.py.tmpl", OutputPath: "api/schemas.py"},
	{TemplatePath: "scaffold/api/routers/score.py.tmpl", OutputPath: "api/routers/score.py"},
	{TemplatePath: "scaffold/storage/schema.sql.tmpl", OutputPath: "storage/schema.sql"},
	{TemplatePath: "scaffold/storage/constraints.cypher.tmpl", OutputPath: "storage/constraints.cypher"},
	{TemplatePath: "scaffold/ui/app.py.tmpl", OutputPath: "ui/app.py"},
	{TemplatePath: "scaffold/ops/docker-compose.yml.tmpl", OutputPath: "ops/docker-compose.yml"},
	{TemplatePath: "scaffold/docs/pr_body.md.tmpl", OutputPath: "docs/PR_BODY.md"},
	{TemplatePath: "scaffold/dotenv.tmpl", OutputPath: ".env"},
	{TemplatePath: "scaffold/readme.md.tmpl", OutputPath: "README.md"},
	{TemplatePath: "scaffold/gitignore.tmpl", OutputPath: ".gitignore", Root: true},
}

// RenderAll renders the full scaffold for the given configuration.
// Output paths are unique by construction of templateToPath.
func (e *Engine) RenderAll(cfg *config.Config) ([]RenderedFile, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	files := make([]RenderedFile, 0, len(templateToPath))
	for _, m := range templateToPath {
		raw, err := templatefs.FS.ReadFile(m.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", m.TemplatePath, err)
		}

		tmpl, err := texttemplate.New(path.Base(m.TemplatePath)).Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", m.TemplatePath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return nil, fmt.Errorf("rendering template %s: %w", m.TemplatePath, err)
		}

		out := m.OutputPath
		if !m.Root {
			out = path.Join(cfg.TargetDir, m.OutputPath)
		}
		files = append(files, RenderedFile{Path: out, Content: buf.Bytes()})
	}
	return files, nil
}

// Dirs returns every directory the scaffold declares, relative to the
// repository root, parents before children.
func Dirs(cfg *config.Config) []string {
	rel := []string{
		"core/engines",
		"core/schemas",
		"core/scoring",
		"core/spice",
		"core/mappers",
		"core/disarm",
		"pipeline/ingest",
		"pipeline/normalize",
		"pipeline/enrich",
		"pipeline/graph",
		"sim",
		"api/routers",
		"storage",
		"ui",
		"ops",
		"docs",
		"data/raw",
		"data/processed",
		"logs",
		"tests/fixtures",
	}
	out := make([]string, len(rel))
	for i, d := range rel {
		out[i] = path.Join(cfg.TargetDir, d)
	}
	return out
}

// PlaceholderDirs returns the subset of Dirs that must stay representable
// in git even when they hold no files, and therefore receive a marker file.
func PlaceholderDirs(cfg *config.Config) []string {
	rel := []string{
		"core/disarm",
		"data/raw",
		"data/processed",
		"logs",
		"tests/fixtures",
	}
	out := make([]string, len(rel))
	for i, d := range rel {
		out[i] = path.Join(cfg.TargetDir, d)
	}
	return out
}
