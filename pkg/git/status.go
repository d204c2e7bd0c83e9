// pkg/git/status.go

package git

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/execute"
	"github.com/sergiomgn/EasyFinance/pkg/platform"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// GetStatus retrieves the current working-tree status.
// It follows the Assess → Intervene → Evaluate pattern.
func GetStatus(rc *ef_io.RuntimeContext, dir string) (*Status, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Ensure git is available on this platform
	if !platform.IsCommandAvailable("git") {
		return nil, ef_err.NewExpectedError(rc.Ctx, fmt.Errorf("git command not found - please install git"))
	}

	// INTERVENE - Get current branch
	branchOutput, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"branch", "--show-current"},
		Dir:     dir,
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get current branch: %w", err)
	}

	// Get detailed status
	statusOutput, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"status", "--porcelain"},
		Dir:     dir,
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get git status: %w", err)
	}

	// EVALUATE - Parse and build status
	status := ParsePorcelain(statusOutput)
	status.Branch = strings.TrimSpace(branchOutput)

	logger.Debug("Git status retrieved",
		zap.String("branch", status.Branch),
		zap.Bool("is_clean", status.IsClean),
		zap.Int("staged", len(status.Staged)),
		zap.Int("modified", len(status.Modified)),
		zap.Int("untracked", len(status.Untracked)))

	return status, nil
}

// ParsePorcelain parses `git status --porcelain` output.
func ParsePorcelain(output string) *Status {
	status := &Status{
		IsClean:   strings.TrimSpace(output) == "",
		Staged:    []string{},
		Modified:  []string{},
		Untracked: []string{},
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		statusCode := line[:2]
		filename := strings.TrimSpace(line[3:])

		// Renames report "old -> new"; the new path is the pending one.
		if idx := strings.Index(filename, " -> "); idx >= 0 {
			filename = filename[idx+4:]
		}

		switch {
		case statusCode == "UU" || statusCode == "AA" || statusCode == "DD":
			status.HasConflicts = true
		case statusCode[0] != ' ' && statusCode[0] != '?':
			status.Staged = append(status.Staged, filename)
		case statusCode[1] != ' ' && statusCode != "??":
			status.Modified = append(status.Modified, filename)
		case statusCode == "??":
			status.Untracked = append(status.Untracked, filename)
		}
	}

	return status
}
