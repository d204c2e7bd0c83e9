// Package cmd wires the command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sergiomgn/EasyFinance/cmd/commit"
	"github.com/sergiomgn/EasyFinance/cmd/pipeline"
	"github.com/sergiomgn/EasyFinance/cmd/release"
	"github.com/sergiomgn/EasyFinance/cmd/task"
	"github.com/sergiomgn/EasyFinance/cmd/telemetry"
	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/execute"
	"github.com/sergiomgn/EasyFinance/pkg/logger"
	"github.com/sergiomgn/EasyFinance/pkg/shared"
)

var dryRun bool

// RootCmd is the base command for efops.
var RootCmd = &cobra.Command{
	Use:           "efops",
	Short:         "Project operations for the EasyFinance repository",
	Long:          "efops records pending changes as scoped commits, inspects CI pipeline definitions,\nvalidates release tags, and runs the project's automation targets.",
	Version:       shared.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dryRun {
			execute.DefaultDryRun = true
		}
	},
}

// RegisterCommands attaches every subcommand and global flag to the root.
func RegisterCommands() {
	registerGlobalFlags(RootCmd.PersistentFlags())

	RootCmd.AddCommand(commit.CommitCmd)
	RootCmd.AddCommand(pipeline.PipelineCmd)
	RootCmd.AddCommand(release.ReleaseCmd)
	RootCmd.AddCommand(task.TaskCmd)
	RootCmd.AddCommand(telemetry.TelemetryCmd)
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&dryRun, "dry-run", false, "log subprocess invocations without executing them")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	RegisterCommands()

	err := RootCmd.Execute()
	if err != nil {
		log := logger.L()
		if log == nil {
			logger.InitFallback()
			log = logger.L()
		}
		if ef_err.IsExpectedUserError(err) {
			log.Warn("Exiting with user error", zap.Error(err))
		} else {
			log.Error("Exiting with error", zap.Error(err))
		}
	}
	return ef_err.GetExitCode(err)
}
