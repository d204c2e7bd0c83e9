// pkg/commit/groups.go
//
// Static scope definitions for granular commits. Each group names the
// repository area it owns, the paths that belong to it, and the commit
// message recorded when any of those paths are pending. Group order is
// fixed and drives the sequence of commits.

package commit

import (
	"path"
	"strings"
)

// Group is one scoped slice of the working tree with its commit message.
type Group struct {
	Name    string
	Message string
	match   func(p string) bool
}

// Matches reports whether a repository-relative path belongs to this group.
func (g Group) Matches(p string) bool {
	return g.match(path.Clean(p))
}

// Select returns the pending paths owned by this group, preserving order.
func (g Group) Select(pending []string) []string {
	var out []string
	for _, p := range pending {
		if g.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Groups returns the ordered scope table. Order is load-bearing: commits
// are recorded in exactly this sequence.
func Groups() []Group {
	return []Group{
		{
			Name:    "configuration",
			Message: "chore: update project configuration",
			match: func(p string) bool {
				switch p {
				case ".gitignore", ".editorconfig", ".env.example", "setup.cfg", "pyproject.toml", "tox.ini":
					return true
				}
				return false
			},
		},
		{
			Name:    "workflow automation",
			Message: "ci: update scheduled automation workflows",
			match: func(p string) bool {
				if !strings.HasPrefix(p, ".github/workflows/") {
					return false
				}
				base := path.Base(p)
				return base != "main.yaml" && base != "main.yml" &&
					!strings.HasPrefix(base, "ci") && !strings.HasPrefix(base, "test")
			},
		},
		{
			Name:    "pre-commit setup",
			Message: "chore: update pre-commit hooks",
			match: func(p string) bool {
				return p == ".pre-commit-config.yaml" || p == ".pre-commit-config.yml" ||
					p == ".flake8" || p == ".bandit"
			},
		},
		{
			Name:    "primary pipeline",
			Message: "ci: update primary build pipeline",
			match: func(p string) bool {
				switch p {
				case ".github/workflows/main.yaml", ".github/workflows/main.yml",
					".github/workflows/ci.yaml", ".github/workflows/ci.yml":
					return true
				}
				return false
			},
		},
		{
			Name:    "auxiliary pipelines",
			Message: "ci: update auxiliary pipelines",
			match: func(p string) bool {
				if !strings.HasPrefix(p, ".github/workflows/") {
					return false
				}
				base := path.Base(p)
				return strings.HasPrefix(base, "test") || strings.HasPrefix(base, "ci-")
			},
		},
		{
			Name:    "templates",
			Message: "docs: update issue and pull request templates",
			match: func(p string) bool {
				return strings.HasPrefix(p, ".github/ISSUE_TEMPLATE/") ||
					p == ".github/PULL_REQUEST_TEMPLATE.md" ||
					p == ".github/pull_request_template.md"
			},
		},
		{
			Name:    "dependency manifests",
			Message: "build: update dependency manifests",
			match: func(p string) bool {
				base := path.Base(p)
				if p != base {
					return false
				}
				return base == "requirements.txt" || base == "requirements-dev.txt" ||
					base == "requirements-test.txt" || base == "Pipfile" ||
					base == "Pipfile.lock" || base == "poetry.lock" ||
					base == "Makefile" || base == "Dockerfile" ||
					base == "docker-compose.yml" || base == "docker-compose.yaml"
			},
		},
		{
			Name:    "test infrastructure",
			Message: "test: update test suite",
			match: func(p string) bool {
				return strings.HasPrefix(p, "tests/") || p == "conftest.py" ||
					p == "pytest.ini"
			},
		},
		{
			Name:    "documentation",
			Message: "docs: update project documentation",
			match: func(p string) bool {
				if strings.HasPrefix(p, "docs/") {
					return true
				}
				base := path.Base(p)
				if p != base {
					return false
				}
				switch base {
				case "README.md", "CONTRIBUTING.md", "CHANGELOG.md", "LICENSE", "CODE_OF_CONDUCT.md":
					return true
				}
				return false
			},
		},
	}
}

// AggregateMessage is the commit message used when all pending changes are
// recorded as a single commit.
const AggregateMessage = "chore: record pending project changes"
