// Package scaffold implements the merge engine: per-path write decisions,
// directory ensuring with git placeholder markers, and run-scoped backup
// naming. It never parses the content it writes.
package scaffold

import "time"

// BackupTimeFormat is the run-scoped timestamp component of backup names.
// One value is computed per invocation so every backup from a run shares it.
const BackupTimeFormat = "20060102_150405"

// PlaceholderName is the marker file written into directories that must
// stay representable in git while holding no tracked files.
const PlaceholderName = ".gitkeep"

// RunContext is the read-only per-invocation state threaded through every
// merge component.
type RunContext struct {
	// Force permits backed-up replacement of pre-existing differing files.
	Force bool

	// DryRun reports decisions without touching the working tree.
	DryRun bool

	// Timestamp is the shared backup-name token, fixed at run start.
	Timestamp string

	// Root is the repository working-tree root all relative paths resolve
	// against.
	Root string
}

// NewRunContext builds a RunContext with the timestamp taken from clock,
// which tests replace with a fixed time.
func NewRunContext(root string, force, dryRun bool, clock func() time.Time) RunContext {
	if clock == nil {
		clock = time.Now
	}
	return RunContext{
		Force:     force,
		DryRun:    dryRun,
		Timestamp: clock().Format(BackupTimeFormat),
		Root:      root,
	}
}
