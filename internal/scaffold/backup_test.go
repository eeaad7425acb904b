package scaffold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackupName(t *testing.T) {
	ctx := NewRunContext("/repo", true, false, fixedClock)
	assert.Equal(t, "gos/.env.bak.20250314_092653", BackupName("gos/.env", ctx))
}

func TestBackupName_SharedWithinRunDistinctAcrossRuns(t *testing.T) {
	first := NewRunContext("/repo", true, false, fixedClock)

	a := BackupName("gos/a.py", first)
	b := BackupName("gos/b.py", first)
	assert.Equal(t, "20250314_092653", a[len(a)-15:])
	assert.Equal(t, a[len(a)-15:], b[len(b)-15:])

	second := NewRunContext("/repo", true, false, func() time.Time {
		return fixedClock().Add(2 * time.Second)
	})
	assert.NotEqual(t, BackupName("gos/a.py", first), BackupName("gos/a.py", second))
}
