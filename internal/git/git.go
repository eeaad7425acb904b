// Package git shells out to the git binary for the handful of operations
// the scaffold needs: work-tree detection, branch ensure, staging and
// conditional commit. The command runner is injectable so the merge flow
// is testable without a real repository.
package git

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/project-gos/gosctl/internal/exitcode"
)

// CommandRunner executes an external command and returns its combined output.
type CommandRunner func(name string, args ...string) ([]byte, error)

var (
	runnerMu      sync.Mutex
	defaultRunner CommandRunner = execRunner
)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// SetCommandRunner replaces the process-wide default runner. Tests use it
// to substitute a fake git.
func SetCommandRunner(r CommandRunner) {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	if r == nil {
		r = execRunner
	}
	defaultRunner = r
}

// GetCommandRunner returns the current default runner so tests can restore it.
func GetCommandRunner() CommandRunner {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	return defaultRunner
}

// CommitOutcome reports whether a conditional commit produced a commit.
type CommitOutcome int

const (
	Committed CommitOutcome = iota
	NothingToCommit
)

// Client runs git against one repository root.
type Client struct {
	root   string
	runner CommandRunner
}

// NewClient returns a Client using the process-wide default runner.
func NewClient(root string) *Client {
	return &Client{root: root}
}

// NewClientWithRunner returns a Client with an injected runner.
func NewClientWithRunner(root string, runner CommandRunner) *Client {
	return &Client{root: root, runner: runner}
}

func (c *Client) run(args ...string) ([]byte, error) {
	runner := c.runner
	if runner == nil {
		runner = GetCommandRunner()
	}
	full := append([]string{"-C", c.root}, args...)
	out, err := runner("git", full...)
	if err != nil {
		return out, fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return out, nil
}

// IsWorkTree reports whether the root is inside a git working tree.
func (c *Client) IsWorkTree() bool {
	out, err := c.run("rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// BranchExists reports whether a local branch with the given name exists.
func (c *Client) BranchExists(name string) bool {
	_, err := c.run("show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// EnsureBranch switches the working tree onto the named branch, creating
// it from the current HEAD when absent and reusing it (history preserved)
// when present. Idempotent; failures are fatal to the run.
func (c *Client) EnsureBranch(name string) error {
	var err error
	if c.BranchExists(name) {
		_, err = c.run("checkout", name)
	} else {
		_, err = c.run("checkout", "-b", name)
	}
	if err != nil {
		return exitcode.Wrap(exitcode.Git, err)
	}
	return nil
}

// CurrentBranch returns the checked-out branch name.
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", exitcode.Wrap(exitcode.Git, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Stage adds each path to the index, directories recursively. A path that
// does not exist in this invocation is tolerated: some optional root-level
// artifacts are not produced by every run.
func (c *Client) Stage(paths []string) error {
	for _, p := range paths {
		if _, err := c.run("add", "--", p); err != nil {
			if strings.Contains(err.Error(), "did not match any files") {
				continue
			}
			return exitcode.Wrap(exitcode.Git, err)
		}
	}
	return nil
}

// CommitIfChanged commits the staged tree with the fixed message, unless
// the staged diff against HEAD is empty, which is reported rather than
// treated as an error.
func (c *Client) CommitIfChanged(message string) (CommitOutcome, error) {
	// Exit status 0 means no staged changes.
	if _, err := c.run("diff", "--cached", "--quiet"); err == nil {
		return NothingToCommit, nil
	}
	if _, err := c.run("commit", "-m", message); err != nil {
		return NothingToCommit, exitcode.Wrap(exitcode.Git, err)
	}
	return Committed, nil
}
