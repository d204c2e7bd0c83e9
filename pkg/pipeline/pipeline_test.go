package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/pipeline"
)

const mainWorkflow = `
name: CI
on:
  push:
    branches: [main]
  pull_request:
    branches: [main]
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - name: Run tests
        run: pytest tests -v
`

const releaseWorkflow = `
name: Release
on:
  push:
    tags: ['v*.*.*']
jobs:
  publish:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - run: python -m build
`

const weeklyWorkflow = `
name: Dependency audit
on:
  schedule:
    - cron: '0 6 * * 1'
jobs:
  audit:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - run: pip list --outdated
`

func newTestRC(t *testing.T) *ef_io.RuntimeContext {
	rc := ef_io.NewContext(context.Background(), "test")
	rc.Log = zaptest.NewLogger(t)
	return rc
}

func writeWorkflow(t *testing.T, dir, name, content string) {
	t.Helper()
	wfDir := filepath.Join(dir, ".github", "workflows")
	require.NoError(t, os.MkdirAll(wfDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(wfDir, name), []byte(content), 0o644))
}

func TestLoadWorkflows(t *testing.T) {
	dir := t.TempDir()
	writeWorkflow(t, dir, "main.yaml", mainWorkflow)
	writeWorkflow(t, dir, "release.yaml", releaseWorkflow)

	workflows, err := pipeline.LoadWorkflows(newTestRC(t), dir)

	require.NoError(t, err)
	require.Len(t, workflows, 2)
	assert.Equal(t, "CI", workflows[0].Name)
	assert.Equal(t, "Release", workflows[1].Name)
}

func TestLoadWorkflowsNoDirectory(t *testing.T) {
	workflows, err := pipeline.LoadWorkflows(newTestRC(t), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, workflows)
}

func TestLoadWorkflowsBrokenFileDoesNotHideOthers(t *testing.T) {
	dir := t.TempDir()
	writeWorkflow(t, dir, "main.yaml", mainWorkflow)
	writeWorkflow(t, dir, "broken.yaml", "on: [push")

	workflows, err := pipeline.LoadWorkflows(newTestRC(t), dir)

	require.Error(t, err)
	require.Len(t, workflows, 1)
	assert.Equal(t, "CI", workflows[0].Name)
}

func TestTriggerShapes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want func(t *testing.T, tr pipeline.Triggers)
	}{
		{
			name: "bare string",
			yaml: "on: push",
			want: func(t *testing.T, tr pipeline.Triggers) {
				assert.NotNil(t, tr.Push)
				assert.Nil(t, tr.PullRequest)
			},
		},
		{
			name: "sequence",
			yaml: "on: [push, pull_request]",
			want: func(t *testing.T, tr pipeline.Triggers) {
				assert.NotNil(t, tr.Push)
				assert.NotNil(t, tr.PullRequest)
			},
		},
		{
			name: "mapping with filters",
			yaml: "on:\n  push:\n    tags: ['v*.*.*']",
			want: func(t *testing.T, tr pipeline.Triggers) {
				require.NotNil(t, tr.Push)
				assert.Equal(t, []string{"v*.*.*"}, tr.Push.Tags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wf pipeline.Workflow
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &wf))
			tt.want(t, wf.On)
		})
	}
}

func TestSummarize(t *testing.T) {
	var wf pipeline.Workflow
	require.NoError(t, yaml.Unmarshal([]byte(weeklyWorkflow), &wf))

	s := pipeline.Summarize(wf)

	assert.Equal(t, "Dependency audit", s.Name)
	assert.Equal(t, 1, s.Jobs)
	require.Len(t, s.Triggers, 1)
	assert.Equal(t, "weekly on Monday at 06:00", s.Triggers[0])
}

func TestSummarizeTagPush(t *testing.T) {
	var wf pipeline.Workflow
	require.NoError(t, yaml.Unmarshal([]byte(releaseWorkflow), &wf))

	s := pipeline.Summarize(wf)

	require.Len(t, s.Triggers, 1)
	assert.Equal(t, "push of tags matching v*.*.*", s.Triggers[0])
}

func TestValidate(t *testing.T) {
	var wf pipeline.Workflow
	require.NoError(t, yaml.Unmarshal([]byte(mainWorkflow), &wf))
	assert.NoError(t, pipeline.Validate(wf))
}

func TestValidateFindsAllProblems(t *testing.T) {
	var wf pipeline.Workflow
	require.NoError(t, yaml.Unmarshal([]byte("name: Empty\njobs:\n  broken: {}\n"), &wf))
	wf.Path = ".github/workflows/empty.yaml"

	err := pipeline.Validate(wf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "will never run")
	assert.Contains(t, err.Error(), "no runs-on")
	assert.Contains(t, err.Error(), "no steps")
}
