// Package task implements the automation target commands.
package task

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_cli"
	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/tasks"
)

// TaskCmd runs one of the project's automation targets.
var TaskCmd = &cobra.Command{
	Use:   "task [name]",
	Short: "Run a project automation target",
	Long:  "Runs one of the project's automation targets (install, lint, format, test,\nsecurity-scan, build, containerize, run). Without a name, lists the targets.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  ef_cli.Wrap(runTask),
}

func runTask(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if len(args) == 0 {
		logger.Info("terminal prompt: Available targets:")
		for _, name := range tasks.Names() {
			t, _ := tasks.Lookup(name)
			logger.Info(fmt.Sprintf("terminal prompt:   %-14s %s", name, t.Description))
		}
		return nil
	}

	target, ok := tasks.Lookup(args[0])
	if !ok {
		return ef_err.NewExpectedError(rc.Ctx, ef_err.NewValidationError(
			fmt.Sprintf("unknown target %q", args[0]),
			"Run \"efops task\" to list the available targets"))
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	return tasks.Run(rc, dir, target)
}
