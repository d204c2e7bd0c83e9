// pkg/git/operations.go
//
// Commit recording operations. Mutations go through the git CLI so hooks,
// signing and repository configuration behave exactly as they would for a
// human operator; read-only queries use go-git (see repo.go).

package git

import (
	"fmt"
	"strings"

	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/execute"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// StageAndCommit stages the given paths and records one commit containing
// exactly those paths. The commit is pathspec-limited so changes already in
// the index for other paths stay staged and untouched.
func StageAndCommit(rc *ef_io.RuntimeContext, dir string, paths []string, message string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if len(paths) == 0 {
		return fmt.Errorf("no paths to commit")
	}

	addArgs := append([]string{"add", "--"}, paths...)
	if out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    addArgs,
		Dir:     dir,
		Capture: true,
	}); err != nil {
		return fmt.Errorf("failed to stage paths: %w\nOutput: %s", err, strings.TrimSpace(out))
	}

	commitArgs := append([]string{"commit", "-m", message, "--"}, paths...)
	if out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    commitArgs,
		Dir:     dir,
		Capture: true,
	}); err != nil {
		return fmt.Errorf("commit failed: %w\nOutput: %s", err, strings.TrimSpace(out))
	}

	logger.Debug("Commit recorded",
		zap.Int("paths", len(paths)),
		zap.String("message", firstLine(message)))
	return nil
}

// CommitAll stages every pending change and records a single commit.
func CommitAll(rc *ef_io.RuntimeContext, dir string, message string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"add", "-A"},
		Dir:     dir,
		Capture: true,
	}); err != nil {
		return fmt.Errorf("failed to stage changes: %w\nOutput: %s", err, strings.TrimSpace(out))
	}

	if out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"commit", "-m", message},
		Dir:     dir,
		Capture: true,
	}); err != nil {
		return fmt.Errorf("commit failed: %w\nOutput: %s", err, strings.TrimSpace(out))
	}

	logger.Debug("Aggregate commit recorded", zap.String("message", firstLine(message)))
	return nil
}

// ListTags returns all tag names in the repository.
func ListTags(rc *ef_io.RuntimeContext, dir string) ([]string, error) {
	out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"tag", "--list"},
		Dir:     dir,
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
