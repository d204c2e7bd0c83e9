package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiomgn/EasyFinance/pkg/tasks"
)

func TestRegistryCoversAllTargets(t *testing.T) {
	want := []string{
		"build", "containerize", "format", "install",
		"lint", "run", "security-scan", "test",
	}
	assert.Equal(t, want, tasks.Names())
}

func TestLookup(t *testing.T) {
	target, ok := tasks.Lookup("lint")

	require.True(t, ok)
	assert.Equal(t, "flake8", target.Command)
	assert.NotEmpty(t, target.Description)
	assert.Positive(t, target.Timeout)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := tasks.Lookup("deploy")
	assert.False(t, ok)
}

func TestEveryTargetIsRunnable(t *testing.T) {
	for _, name := range tasks.Names() {
		target, ok := tasks.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, target.Name)
		assert.NotEmpty(t, target.Command, "target %s has no command", name)
		assert.Positive(t, target.Timeout, "target %s has no timeout", name)
	}
}
