package commit_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiomgn/EasyFinance/pkg/commit"
	"github.com/sergiomgn/EasyFinance/pkg/git"
)

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return strings.TrimSpace(string(out))
}

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.name", "Tester")
	runGit(t, dir, "config", "user.email", "tester@example.com")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func commitFiles(t *testing.T, dir, rev string) []string {
	t.Helper()
	out := runGit(t, dir, "show", "--name-only", "--format=", rev)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestGranularCommitsAgainstRealRepository(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, ".gitignore", "__pycache__/\n")
	writeFile(t, dir, "requirements.txt", "fastapi\n")
	writeFile(t, dir, "README.md", "# EasyFinance\n")

	// A path the operator staged beforehand must stay in its own group's
	// commit, not ride along with the first group recorded.
	runGit(t, dir, "add", "README.md")

	rc := newTestRC(t)
	status, err := git.GetStatus(rc, dir)
	require.NoError(t, err)
	pending := status.PendingPaths()
	require.ElementsMatch(t, []string{".gitignore", "requirements.txt", "README.md"}, pending)

	orch := commit.NewOrchestrator(&commit.GitRecorder{Dir: dir})
	require.NoError(t, orch.Run(rc, commit.StrategyGranular, pending))

	require.Equal(t, "3", runGit(t, dir, "rev-list", "--count", "HEAD"))

	// Fixed group order: configuration, dependency manifests, documentation.
	assert.Equal(t, []string{".gitignore"}, commitFiles(t, dir, "HEAD~2"))
	assert.Equal(t, []string{"requirements.txt"}, commitFiles(t, dir, "HEAD~1"))
	assert.Equal(t, []string{"README.md"}, commitFiles(t, dir, "HEAD"))

	out := runGit(t, dir, "status", "--porcelain")
	assert.Empty(t, out, "working tree should be clean after sequencing")
}

func TestAggregateCommitAgainstRealRepository(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, ".gitignore", "__pycache__/\n")
	writeFile(t, dir, "docs/setup.md", "# Setup\n")

	rc := newTestRC(t)
	status, err := git.GetStatus(rc, dir)
	require.NoError(t, err)

	orch := commit.NewOrchestrator(&commit.GitRecorder{Dir: dir})
	require.NoError(t, orch.Run(rc, commit.StrategyAggregate, status.PendingPaths()))

	require.Equal(t, "1", runGit(t, dir, "rev-list", "--count", "HEAD"))
	assert.ElementsMatch(t, []string{".gitignore", "docs/setup.md"}, commitFiles(t, dir, "HEAD"))
}
