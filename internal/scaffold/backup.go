package scaffold

// BackupName derives the backup path for a file from its original path and
// the run-scoped timestamp. Pure: same inputs, same output. Template paths
// are unique within a run, so backup names cannot collide within one.
func BackupName(path string, ctx RunContext) string {
	return path + ".bak." + ctx.Timestamp
}
