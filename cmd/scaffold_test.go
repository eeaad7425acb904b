package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-gos/gosctl/internal/git"
)

// scriptedGit fakes the git binary per subcommand. The index state is
// simulated with the staged flag: a run that wrote files reports a staged
// diff, a clean re-run does not.
type scriptedGit struct {
	t          *testing.T
	branches   map[string]bool
	stagedDiff bool
	commits    []string
	subs       []string
}

func newScriptedGit(t *testing.T, stagedDiff bool) *scriptedGit {
	return &scriptedGit{t: t, branches: map[string]bool{}, stagedDiff: stagedDiff}
}

func (s *scriptedGit) runner(name string, args ...string) ([]byte, error) {
	require.Equal(s.t, "git", name)
	require.GreaterOrEqual(s.t, len(args), 3)
	sub, rest := args[2], args[3:]
	s.subs = append(s.subs, sub)

	switch sub {
	case "rev-parse":
		return []byte("true\n"), nil
	case "show-ref":
		// rest: --verify --quiet refs/heads/<name>
		ref := rest[len(rest)-1]
		if s.branches[ref] {
			return nil, nil
		}
		return nil, errors.New("exit status 1")
	case "checkout":
		if rest[0] == "-b" {
			s.branches["refs/heads/"+rest[1]] = true
		}
		return nil, nil
	case "add":
		return nil, nil
	case "diff":
		if s.stagedDiff {
			return nil, errors.New("exit status 1")
		}
		return nil, nil
	case "commit":
		s.commits = append(s.commits, rest[len(rest)-1])
		return nil, nil
	default:
		s.t.Fatalf("unexpected git subcommand %q", sub)
		return nil, nil
	}
}

func withFakeGit(t *testing.T, fake *scriptedGit) {
	t.Helper()
	original := git.GetCommandRunner()
	t.Cleanup(func() { git.SetCommandRunner(original) })
	git.SetCommandRunner(fake.runner)
}

func scaffoldRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "gos"), 0o755))
	return root
}

func TestScaffoldCmd_FreshTree(t *testing.T) {
	root := scaffoldRepo(t)
	fake := newScriptedGit(t, true)
	withFakeGit(t, fake)

	_, _, err := executeCommand("scaffold", "--repo-root", root, "--skip-pr")
	require.NoError(t, err)

	// Every templated file exists with content.
	assert.FileExists(t, filepath.Join(root, "gos", "core", "engines", "catma.py"))
	assert.FileExists(t, filepath.Join(root, "gos", "api", "routers", "score.py"))
	assert.FileExists(t, filepath.Join(root, "gos", ".env"))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))

	// Placeholder markers appear in declared-empty directories.
	assert.FileExists(t, filepath.Join(root, "gos", "data", "raw", ".gitkeep"))
	assert.FileExists(t, filepath.Join(root, "gos", "logs", ".gitkeep"))

	// Branch created from HEAD; one commit with the fixed message.
	assert.True(t, fake.branches["refs/heads/feature/gos-scaffold"])
	require.Len(t, fake.commits, 1)
	assert.Equal(t, "chore: apply GOS project scaffold", fake.commits[0])
}

func TestScaffoldCmd_SecondRunKeepsCustomizations(t *testing.T) {
	root := scaffoldRepo(t)
	withFakeGit(t, newScriptedGit(t, true))

	_, _, err := executeCommand("scaffold", "--repo-root", root, "--skip-pr")
	require.NoError(t, err)

	custom := filepath.Join(root, "gos", "api", "main.py")
	require.NoError(t, os.WriteFile(custom, []byte("# my version\n"), 0o644))

	// Clean index on the re-run: everything already present.
	fake := newScriptedGit(t, false)
	fake.branches["refs/heads/feature/gos-scaffold"] = true
	withFakeGit(t, fake)

	_, _, err = executeCommand("scaffold", "--repo-root", root, "--skip-pr")
	require.NoError(t, err)

	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "# my version\n", string(data))
	assert.Empty(t, fake.commits)
}

func TestScaffoldCmd_ForceBacksUpDiffering(t *testing.T) {
	root := scaffoldRepo(t)
	withFakeGit(t, newScriptedGit(t, true))

	_, _, err := executeCommand("scaffold", "--repo-root", root, "--skip-pr")
	require.NoError(t, err)

	custom := filepath.Join(root, "gos", "storage", "schema.sql")
	require.NoError(t, os.WriteFile(custom, []byte("-- my ddl\n"), 0o644))

	withFakeGit(t, newScriptedGit(t, true))
	_, _, err = executeCommand("scaffold", "--repo-root", root, "--skip-pr", "--force", "--yes")
	require.NoError(t, err)

	// Template content restored, customization preserved in a backup.
	restored, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.NotEqual(t, "-- my ddl\n", string(restored))

	matches, err := filepath.Glob(custom + ".bak.*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	backup, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, "-- my ddl\n", string(backup))
}

func TestScaffoldCmd_ForceDeclinedAborts(t *testing.T) {
	root := scaffoldRepo(t)
	fake := newScriptedGit(t, true)
	withFakeGit(t, fake)

	originalConfirm := confirmForce
	t.Cleanup(func() { confirmForce = originalConfirm })
	confirmForce = func() (bool, error) { return false, nil }

	t.Setenv("CI", "")
	_, _, err := executeCommand("scaffold", "--repo-root", root, "--skip-pr", "--force")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "gos", "api", "main.py"))
	assert.Empty(t, fake.commits)
}

func TestScaffoldCmd_DryRunWritesNothing(t *testing.T) {
	root := scaffoldRepo(t)
	fake := newScriptedGit(t, true)
	withFakeGit(t, fake)

	_, _, err := executeCommand("scaffold", "--repo-root", root, "--dry-run")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "gos", "api", "main.py"))
	assert.NoFileExists(t, filepath.Join(root, ".gitignore"))
	assert.Empty(t, fake.commits)
	assert.False(t, fake.branches["refs/heads/feature/gos-scaffold"])
}

func TestScaffoldCmd_MissingTargetDirFails(t *testing.T) {
	root := t.TempDir() // no gos/ subdirectory
	fake := newScriptedGit(t, true)
	withFakeGit(t, fake)

	_, _, err := executeCommand("scaffold", "--repo-root", root, "--skip-pr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target subdirectory")

	// The precondition aborts before any mutation: nothing written, no
	// branch created, no checkout attempted.
	assert.NoFileExists(t, filepath.Join(root, ".gitignore"))
	assert.Empty(t, fake.branches)
	assert.NotContains(t, fake.subs, "checkout")
	assert.Empty(t, fake.commits)
}

func TestScaffoldCmd_NotAWorkTreeFails(t *testing.T) {
	root := scaffoldRepo(t)
	original := git.GetCommandRunner()
	t.Cleanup(func() { git.SetCommandRunner(original) })
	git.SetCommandRunner(func(name string, args ...string) ([]byte, error) {
		return []byte("fatal: not a git repository"), errors.New("exit status 128")
	})

	_, _, err := executeCommand("scaffold", "--repo-root", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestScaffoldCmd_CustomConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "stack"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "gosctl.yaml"),
		[]byte("targetDir: stack\nbranch: feature/custom\n"), 0o644))

	fake := newScriptedGit(t, true)
	withFakeGit(t, fake)

	_, _, err := executeCommand("scaffold", "--repo-root", root, "--skip-pr")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "stack", "sim", "tickloop.py"))
	assert.True(t, fake.branches["refs/heads/feature/custom"])
}
