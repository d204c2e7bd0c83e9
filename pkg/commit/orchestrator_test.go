package commit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sergiomgn/EasyFinance/pkg/commit"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
)

// fakeRecorder captures recorded commits instead of touching a repository.
type fakeRecorder struct {
	commits   []recordedCommit
	failOn    string // group message that should fail
	recordAll int
}

type recordedCommit struct {
	paths   []string
	message string
}

func (f *fakeRecorder) Record(rc *ef_io.RuntimeContext, paths []string, message string) error {
	if f.failOn != "" && message == f.failOn {
		return errors.New("simulated store rejection")
	}
	f.commits = append(f.commits, recordedCommit{paths: paths, message: message})
	return nil
}

func (f *fakeRecorder) RecordAll(rc *ef_io.RuntimeContext, message string) error {
	f.recordAll++
	f.commits = append(f.commits, recordedCommit{message: message})
	return nil
}

func newTestRC(t *testing.T) *ef_io.RuntimeContext {
	rc := ef_io.NewContext(context.Background(), "test")
	rc.Log = zaptest.NewLogger(t)
	return rc
}

func TestGranularSingleGroupOnly(t *testing.T) {
	// Only documentation paths pending: exactly one commit, eight skips.
	rec := &fakeRecorder{}
	orch := commit.NewOrchestrator(rec)

	pending := []string{"README.md", "docs/setup.md"}
	err := orch.Run(newTestRC(t), commit.StrategyGranular, pending)

	require.NoError(t, err)
	require.Len(t, rec.commits, 1)
	assert.ElementsMatch(t, pending, rec.commits[0].paths)
}

func TestGranularThreeGroupsInOrder(t *testing.T) {
	rec := &fakeRecorder{}
	orch := commit.NewOrchestrator(rec)

	pending := []string{
		"README.md",                     // documentation (group 9)
		".gitignore",                    // configuration (group 1)
		".github/workflows/main.yaml",   // primary pipeline (group 4)
		"docs/pipelines.md",             // documentation again
	}
	err := orch.Run(newTestRC(t), commit.StrategyGranular, pending)

	require.NoError(t, err)
	require.Len(t, rec.commits, 3)

	// Fixed group order: configuration, primary pipeline, documentation.
	assert.Equal(t, []string{".gitignore"}, rec.commits[0].paths)
	assert.Equal(t, []string{".github/workflows/main.yaml"}, rec.commits[1].paths)
	assert.ElementsMatch(t, []string{"README.md", "docs/pipelines.md"}, rec.commits[2].paths)
}

func TestGranularCommitCountMatchesMatchingGroups(t *testing.T) {
	rec := &fakeRecorder{}
	orch := commit.NewOrchestrator(rec)

	pending := []string{
		".pre-commit-config.yaml",
		"requirements.txt",
		"tests/test_api.py",
		"src/api.py", // matches no group, never committed in granular mode
	}
	err := orch.Run(newTestRC(t), commit.StrategyGranular, pending)

	require.NoError(t, err)
	assert.Len(t, rec.commits, 3)
	for _, c := range rec.commits {
		assert.NotContains(t, c.paths, "src/api.py")
	}
}

func TestGranularFailureAbortsRemainder(t *testing.T) {
	// Fail on dependency manifests (group 7): earlier commits stay, later
	// groups are never attempted.
	rec := &fakeRecorder{failOn: "build: update dependency manifests"}
	orch := commit.NewOrchestrator(rec)

	pending := []string{
		".gitignore",       // group 1, recorded
		"requirements.txt", // group 7, fails
		"README.md",        // group 9, never attempted
	}
	err := orch.Run(newTestRC(t), commit.StrategyGranular, pending)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency manifests")
	require.Len(t, rec.commits, 1)
	assert.Equal(t, []string{".gitignore"}, rec.commits[0].paths)
}

func TestAggregateSingleCommit(t *testing.T) {
	rec := &fakeRecorder{}
	orch := commit.NewOrchestrator(rec)

	pending := []string{".gitignore", "requirements.txt", "README.md"}
	err := orch.Run(newTestRC(t), commit.StrategyAggregate, pending)

	require.NoError(t, err)
	assert.Equal(t, 1, rec.recordAll)
	require.Len(t, rec.commits, 1)
	assert.Equal(t, commit.AggregateMessage, rec.commits[0].message)
}

func TestCancelRecordsNothing(t *testing.T) {
	rec := &fakeRecorder{}
	orch := commit.NewOrchestrator(rec)

	err := orch.Run(newTestRC(t), commit.StrategyCancel, []string{"README.md"})

	require.NoError(t, err)
	assert.Empty(t, rec.commits)
	assert.Zero(t, rec.recordAll)
}
