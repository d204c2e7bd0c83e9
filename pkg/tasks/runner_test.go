package tasks_test

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/execute"
	"github.com/sergiomgn/EasyFinance/pkg/tasks"
)

func newTestRC(t *testing.T) *ef_io.RuntimeContext {
	rc := ef_io.NewContext(context.Background(), "test")
	rc.Log = zaptest.NewLogger(t)
	return rc
}

func TestRunMissingTool(t *testing.T) {
	err := tasks.Run(newTestRC(t), t.TempDir(), tasks.Target{
		Name:    "lint",
		Command: "definitely-not-a-real-linter",
	})

	require.Error(t, err)
	assert.Equal(t, ef_err.CategoryDependency, ef_err.CategoryOf(err))
}

func TestRunDryRunCoversRetriedTargets(t *testing.T) {
	execute.DefaultDryRun = true
	t.Cleanup(func() { execute.DefaultDryRun = false })

	// Retried targets go through the same runner, so dry-run applies.
	err := tasks.Run(newTestRC(t), t.TempDir(), tasks.Target{
		Name:    "install",
		Command: "git",
		Args:    []string{"version"},
		Timeout: time.Minute,
		Retries: 3,
	})

	assert.NoError(t, err)
}

func TestRunTimeoutAppliesWithRetries(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	start := time.Now()
	err := tasks.Run(newTestRC(t), t.TempDir(), tasks.Target{
		Name:    "slow",
		Command: "sleep",
		Args:    []string{"5"},
		Timeout: 200 * time.Millisecond,
		Retries: 2,
	})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "timeout should cut the target short")
}
