// Package audit appends one JSON line per gosctl invocation to a per-user
// history file, recording the operation, outcome, exit code and duration.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Event struct {
	Timestamp     string            `json:"timestamp"`
	Operation     string            `json:"operation"`
	Args          []string          `json:"args"`
	Result        string            `json:"result"`
	ExitCode      int               `json:"exitCode"`
	DurationMs    int64             `json:"durationMs"`
	CorrelationID string            `json:"correlationId"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func BuildEvent(args []string, result string, exitCode int, duration time.Duration) Event {
	op, repoRoot, force := inferFromArgs(args)
	meta := map[string]string{}
	if repoRoot != "" {
		meta["repoRoot"] = repoRoot
	}
	if force {
		meta["force"] = "true"
	}
	if len(meta) == 0 {
		meta = nil
	}
	return Event{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Operation:     op,
		Args:          args,
		Result:        result,
		ExitCode:      exitCode,
		DurationMs:    duration.Milliseconds(),
		CorrelationID: fmt.Sprintf("%d", time.Now().UTC().UnixNano()),
		Metadata:      meta,
	}
}

func Write(event Event) error {
	path, err := historyPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}

// ReadHistory returns all recorded events, oldest first. A missing history
// file yields an empty slice.
func ReadHistory() ([]Event, error) {
	path, err := historyPath()
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var out []Event
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event Event
		if err := json.Unmarshal([]byte(line), &event); err == nil {
			out = append(out, event)
		}
	}
	return out, scanner.Err()
}

func (e Event) MetadataValue(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}

func historyPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gosctl", "history.log"), nil
}

func inferFromArgs(args []string) (operation, repoRoot string, force bool) {
	operation = "root"
	for i := 1; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			continue
		}
		operation = args[i]
		break
	}
	for i := 0; i < len(args); i++ {
		if args[i] == "--force" {
			force = true
		}
		if i+1 < len(args) && args[i] == "--repo-root" {
			repoRoot = args[i+1]
		}
	}
	if repoRoot == "" {
		repoRoot = "."
	}
	return
}
