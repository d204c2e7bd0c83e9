// Package tasks exposes the project's build-automation targets as named,
// independent operations. Each target invokes one external tool with fixed
// arguments and propagates its exit code; no target depends on another
// beyond what they leave in the filesystem.
package tasks

import (
	"sort"
	"time"
)

// Target is one named automation operation.
type Target struct {
	Name        string
	Description string
	Command     string
	Args        []string
	Timeout     time.Duration
	// Retries covers targets that hit the network and can fail transiently.
	Retries int
}

// registry is the static target table, keyed by name.
var registry = map[string]Target{
	"install": {
		Name:        "install",
		Description: "Install runtime and development dependencies",
		Command:     "pip",
		Args:        []string{"install", "-r", "requirements.txt"},
		Timeout:     10 * time.Minute,
		Retries:     3,
	},
	"lint": {
		Name:        "lint",
		Description: "Run the linter over the source tree",
		Command:     "flake8",
		Args:        []string{"src", "tests"},
		Timeout:     5 * time.Minute,
	},
	"format": {
		Name:        "format",
		Description: "Reformat the source tree in place",
		Command:     "black",
		Args:        []string{"src", "tests"},
		Timeout:     5 * time.Minute,
	},
	"test": {
		Name:        "test",
		Description: "Run the test suite",
		Command:     "pytest",
		Args:        []string{"tests", "-v"},
		Timeout:     15 * time.Minute,
	},
	"security-scan": {
		Name:        "security-scan",
		Description: "Scan the source tree for known insecure patterns",
		Command:     "bandit",
		Args:        []string{"-r", "src"},
		Timeout:     5 * time.Minute,
	},
	"build": {
		Name:        "build",
		Description: "Build the distributable package",
		Command:     "python",
		Args:        []string{"-m", "build"},
		Timeout:     10 * time.Minute,
	},
	"containerize": {
		Name:        "containerize",
		Description: "Build the container image",
		Command:     "docker",
		Args:        []string{"build", "-t", "easyfinance:latest", "."},
		Timeout:     20 * time.Minute,
	},
	"run": {
		Name:        "run",
		Description: "Start the development server",
		Command:     "uvicorn",
		Args:        []string{"src.api:app", "--reload"},
		Timeout:     24 * time.Hour,
	},
}

// Lookup returns the target with the given name.
func Lookup(name string) (Target, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns every registered target name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
