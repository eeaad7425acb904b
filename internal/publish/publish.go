// Package publish opens a pull request for the scaffold branch through the
// GitHub CLI. It is strictly best-effort: a missing gh binary or a failed
// call degrades to printed manual instructions and never fails the run.
package publish

import (
	"os/exec"
	"strings"

	"github.com/project-gos/gosctl/internal/output"
)

// Outcome reports how PR publication ended.
type Outcome int

const (
	// Opened: gh created the pull request.
	Opened Outcome = iota
	// Skipped: gh is not installed; manual instructions were printed.
	Skipped
	// Failed: gh was invoked and errored (including "PR already exists");
	// swallowed, never fatal.
	Failed
)

// String returns the status label for an outcome.
func (o Outcome) String() string {
	switch o {
	case Opened:
		return "opened"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// CommandRunner executes an external command and returns its combined output.
type CommandRunner func(name string, args ...string) ([]byte, error)

// Publisher creates pull requests with the gh CLI.
type Publisher struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
}

// NewPublisher returns a Publisher backed by the real gh binary.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// NewPublisherWithRunner returns a Publisher with injected process hooks.
func NewPublisherWithRunner(runner CommandRunner, lookPath func(string) (string, error)) *Publisher {
	return &Publisher{runner: runner, lookPath: lookPath}
}

// Request describes the pull request to open.
type Request struct {
	Branch string
	Base   string
	Title  string
	// BodyFile is the path of the generated document used as the PR body.
	BodyFile string
}

// Publish attempts to open the pull request and reports the outcome.
func (p *Publisher) Publish(req Request) Outcome {
	look := p.lookPath
	if look == nil {
		look = exec.LookPath
	}
	if _, err := look("gh"); err != nil {
		output.Warn("gh CLI not found; skipping pull request creation")
		p.printManualInstructions(req)
		return Skipped
	}

	runner := p.runner
	if runner == nil {
		runner = func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		}
	}

	args := []string{
		"pr", "create",
		"--base", req.Base,
		"--head", req.Branch,
		"--title", req.Title,
	}
	if req.BodyFile != "" {
		args = append(args, "--body-file", req.BodyFile)
	} else {
		args = append(args, "--body", req.Title)
	}

	out, err := runner("gh", args...)
	if err != nil {
		output.Warn("gh pr create failed", "error", strings.TrimSpace(string(out)))
		p.printManualInstructions(req)
		return Failed
	}

	output.Success("pull request opened: " + strings.TrimSpace(string(out)))
	return Opened
}

func (p *Publisher) printManualInstructions(req Request) {
	output.Info("open the pull request manually:")
	output.Info("  git push -u origin " + req.Branch)
	output.Info("  then create a PR against " + req.Base + " titled " + "\"" + req.Title + "\"")
}
