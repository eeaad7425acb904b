package publish

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request() Request {
	return Request{
		Branch:   "feature/gos-scaffold",
		Base:     "main",
		Title:    "Apply GOS project scaffold",
		BodyFile: "gos/docs/PR_BODY.md",
	}
}

func TestPublish_SkippedWhenGhMissing(t *testing.T) {
	p := NewPublisherWithRunner(
		func(name string, args ...string) ([]byte, error) {
			t.Fatal("runner must not be invoked when gh is absent")
			return nil, nil
		},
		func(string) (string, error) { return "", errors.New("not found") },
	)

	assert.Equal(t, Skipped, p.Publish(request()))
}

func TestPublish_Opened(t *testing.T) {
	var got []string
	p := NewPublisherWithRunner(
		func(name string, args ...string) ([]byte, error) {
			got = append([]string{name}, args...)
			return []byte("https://github.com/org/repo/pull/7\n"), nil
		},
		func(string) (string, error) { return "/usr/bin/gh", nil },
	)

	assert.Equal(t, Opened, p.Publish(request()))

	require.NotEmpty(t, got)
	assert.Equal(t, "gh", got[0])
	assert.Contains(t, got, "--base")
	assert.Contains(t, got, "main")
	assert.Contains(t, got, "--head")
	assert.Contains(t, got, "feature/gos-scaffold")
	assert.Contains(t, got, "--body-file")
	assert.Contains(t, got, "gos/docs/PR_BODY.md")
}

func TestPublish_FailureSwallowed(t *testing.T) {
	p := NewPublisherWithRunner(
		func(name string, args ...string) ([]byte, error) {
			return []byte("a pull request for branch already exists"), errors.New("exit status 1")
		},
		func(string) (string, error) { return "/usr/bin/gh", nil },
	)

	assert.Equal(t, Failed, p.Publish(request()))
}

func TestPublish_NoBodyFileFallsBackToTitle(t *testing.T) {
	var got []string
	p := NewPublisherWithRunner(
		func(name string, args ...string) ([]byte, error) {
			got = append([]string{name}, args...)
			return nil, nil
		},
		func(string) (string, error) { return "/usr/bin/gh", nil },
	)

	req := request()
	req.BodyFile = ""
	assert.Equal(t, Opened, p.Publish(req))
	assert.Contains(t, got, "--body")
	assert.NotContains(t, got, "--body-file")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "opened", Opened.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "failed", Failed.String())
}
