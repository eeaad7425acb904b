package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/project-gos/gosctl/internal/exitcode"
)

// Decision classifies what a run did with one templated path.
type Decision int

const (
	// Created: no file existed; desired content was written.
	Created Decision = iota
	// KeptExisting: a file existed and force mode was off; left untouched.
	KeptExisting
	// UpdatedWithBackup: force mode, differing bytes; original copied to
	// its backup path, then replaced with desired content.
	UpdatedWithBackup
	// UnchangedNoop: force mode, byte-identical content; nothing written.
	UnchangedNoop
)

// String returns the audit-line label for a decision.
func (d Decision) String() string {
	switch d {
	case Created:
		return "Created"
	case KeptExisting:
		return "Exists (kept)"
	case UpdatedWithBackup:
		return "Updated (backup saved)"
	case UnchangedNoop:
		return "Unchanged"
	default:
		return "Unknown"
	}
}

// Result is the outcome for one templated path.
type Result struct {
	Path     string
	Decision Decision
	// Backup is the backup artifact path, set only for UpdatedWithBackup.
	Backup string
}

// Changed reports whether the decision mutated the working tree.
func (r Result) Changed() bool {
	return r.Decision == Created || r.Decision == UpdatedWithBackup
}

// Entry is one templated path with its desired content.
type Entry struct {
	Path    string
	Content []byte
}

// Apply computes and performs the write decision for one entry:
//
//  1. missing file             → write, Created
//  2. exists, force off        → keep, KeptExisting
//  3. exists, force on, same   → UnchangedNoop
//  4. exists, force on, differ → back up then overwrite, UpdatedWithBackup
//
// Comparison is exact byte equality. The backup must succeed before the
// overwrite happens; a failed backup aborts without touching the original.
// Filesystem errors are fatal to the run; partial application is recovered
// by re-running (earlier decisions are idempotent).
func Apply(entry Entry, ctx RunContext) (Result, error) {
	full := filepath.Join(ctx.Root, filepath.FromSlash(entry.Path))
	res := Result{Path: entry.Path}

	existing, err := os.ReadFile(full)
	switch {
	case os.IsNotExist(err):
		res.Decision = Created
		if ctx.DryRun {
			return res, nil
		}
		if err := writeFile(full, entry.Content, 0o644); err != nil {
			return res, exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("writing %s: %w", entry.Path, err))
		}
		return res, nil

	case err != nil:
		return res, exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("reading %s: %w", entry.Path, err))
	}

	if !ctx.Force {
		res.Decision = KeptExisting
		return res, nil
	}

	if bytes.Equal(existing, entry.Content) {
		res.Decision = UnchangedNoop
		return res, nil
	}

	res.Decision = UpdatedWithBackup
	res.Backup = BackupName(entry.Path, ctx)
	if ctx.DryRun {
		return res, nil
	}

	info, err := os.Stat(full)
	if err != nil {
		return res, exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("inspecting %s: %w", entry.Path, err))
	}
	mode := info.Mode().Perm()

	backupFull := BackupName(full, ctx)
	if err := copyFile(full, backupFull, mode); err != nil {
		return res, exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("backing up %s: %w", entry.Path, err))
	}
	if err := writeFile(full, entry.Content, mode); err != nil {
		return res, exitcode.Wrap(exitcode.Filesystem, fmt.Errorf("overwriting %s: %w", entry.Path, err))
	}
	return res, nil
}

func writeFile(path string, content []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, mode)
}

// copyFile preserves the source mode on the copy, so a backed-up script
// keeps its exec bit.
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, mode)
}
