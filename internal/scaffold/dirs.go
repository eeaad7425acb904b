package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/project-gos/gosctl/internal/exitcode"
)

// EnsureDirs creates every directory in dirs (parents included) under
// ctx.Root, then writes a placeholder marker into each placeholder dir
// that holds no files. The marker's own presence counts, so re-runs
// neither remove nor re-add it. Filesystem failures are fatal.
func EnsureDirs(ctx RunContext, dirs, placeholder []string) error {
	if ctx.DryRun {
		return nil
	}

	for _, d := range dirs {
		full := filepath.Join(ctx.Root, filepath.FromSlash(d))
		if err := os.MkdirAll(full, 0o755); err != nil {
			return exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("creating directory %s: %w", d, err))
		}
	}

	for _, d := range placeholder {
		full := filepath.Join(ctx.Root, filepath.FromSlash(d))
		empty, err := hasNoFiles(full)
		if err != nil {
			return exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("inspecting directory %s: %w", d, err))
		}
		if !empty {
			continue
		}
		marker := filepath.Join(full, PlaceholderName)
		if err := os.WriteFile(marker, nil, 0o644); err != nil {
			return exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("writing placeholder in %s: %w", d, err))
		}
	}
	return nil
}

// hasNoFiles reports whether dir contains no regular files. Subdirectories
// do not count: git tracks files, not directories.
func hasNoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			return false, nil
		}
	}
	return true, nil
}
