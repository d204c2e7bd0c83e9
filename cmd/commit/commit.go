// Package commit implements the interactive commit command.
package commit

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/sergiomgn/EasyFinance/pkg/commit"
	"github.com/sergiomgn/EasyFinance/pkg/ef_cli"
	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/git"
	"github.com/sergiomgn/EasyFinance/pkg/interaction"
)

// CommitCmd records pending working-tree changes as scoped commits.
var CommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Record pending changes as scoped commits",
	Long: `Groups the working tree's pending changes into a fixed sequence of scoped
commits, or one aggregate commit. Groups with no pending paths are skipped.
The choice is made once; invalid input ends the run.`,
	RunE: ef_cli.Wrap(runCommit),
}

func runCommit(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	// Assess
	if err := git.CheckGitInstalled(rc.Ctx); err != nil {
		return err
	}
	if err := git.VerifyRepository(rc, dir); err != nil {
		return ef_err.NewExpectedError(rc.Ctx, err)
	}

	status, err := git.GetStatus(rc, dir)
	if err != nil {
		return err
	}
	if status.HasConflicts {
		return ef_err.NewExpectedError(rc.Ctx, ef_err.NewGitError(
			"working tree has unresolved merge conflicts", nil,
			"Resolve the conflicted paths and stage them: git add <path>",
			"Finish or abort the merge before recording commits"))
	}
	pending := status.PendingPaths()
	if len(pending) == 0 {
		logger.Info("terminal prompt: Working tree is clean, nothing to record")
		return nil
	}

	// Identity only matters once a commit will actually be recorded.
	if err := git.CheckGitIdentity(rc.Ctx, dir); err != nil {
		return err
	}

	logger.Info("Pending changes found",
		zap.Int("count", len(pending)),
		zap.String("branch", status.Branch))

	// Intervene
	logger.Info("terminal prompt: Pending changes detected. Choose a commit strategy:")
	logger.Info("terminal prompt:   1) Granular: one scoped commit per change group")
	logger.Info("terminal prompt:   2) Aggregate: a single commit with everything")
	logger.Info("terminal prompt:   3) Cancel")

	input, err := interaction.ReadLine(rc.Ctx, bufio.NewReader(os.Stdin), "Selection")
	if err != nil {
		return err
	}

	strategy, err := commit.ParseStrategy(input)
	if err != nil {
		return ef_err.NewExpectedError(rc.Ctx, err)
	}

	// Evaluate
	orch := commit.NewOrchestrator(&commit.GitRecorder{Dir: dir})
	return orch.Run(rc, strategy, pending)
}
