package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildEvent_InfersFieldsFromArgs(t *testing.T) {
	event := BuildEvent([]string{"gosctl", "scaffold", "--force", "--repo-root", "/work/repo"}, "failure", 3, 1500*time.Millisecond)

	assert.Equal(t, "scaffold", event.Operation)
	assert.Equal(t, 3, event.ExitCode)
	assert.Equal(t, int64(1500), event.DurationMs)
	assert.Equal(t, "/work/repo", event.MetadataValue("repoRoot"))
	assert.Equal(t, "true", event.MetadataValue("force"))
}

func TestBuildEvent_RootInvocation(t *testing.T) {
	event := BuildEvent([]string{"gosctl", "--json"}, "success", 0, time.Millisecond)

	assert.Equal(t, "root", event.Operation)
	assert.Equal(t, ".", event.MetadataValue("repoRoot"))
	assert.Empty(t, event.MetadataValue("force"))
}
