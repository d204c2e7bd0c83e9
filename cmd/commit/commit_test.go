package commit

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
)

func newTestRC(t *testing.T) *ef_io.RuntimeContext {
	rc := ef_io.NewContext(context.Background(), "test")
	rc.Log = zaptest.NewLogger(t)
	return rc
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestCleanTreeSucceedsWithoutIdentity(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	runGit(t, dir, "init")

	// No identity anywhere: a clean tree records nothing, so none is needed.
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(dir, "no-such-config"))
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
	chdir(t, dir)

	err := runCommit(newTestRC(t), CommitCmd, nil)

	assert.NoError(t, err)
}

func TestConflictedTreeIsRefusedBeforePrompt(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.name", "Tester")
	runGit(t, dir, "config", "user.email", "tester@example.com")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	write := func(content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(content), 0o644))
	}

	write("base\n")
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "base")
	runGit(t, dir, "checkout", "-b", "side")
	write("side\n")
	runGit(t, dir, "commit", "-am", "side")
	runGit(t, dir, "checkout", "main")
	write("main\n")
	runGit(t, dir, "commit", "-am", "main")

	merge := exec.Command("git", "merge", "side")
	merge.Dir = dir
	require.Error(t, merge.Run(), "merge should conflict")

	chdir(t, dir)
	err := runCommit(newTestRC(t), CommitCmd, nil)

	require.Error(t, err)
	assert.True(t, ef_err.IsExpectedUserError(err))
	assert.Contains(t, err.Error(), "merge conflicts")
}
