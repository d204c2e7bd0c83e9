// Package pipeline implements the pipeline inspection commands.
package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_cli"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/pipeline"
)

// PipelineCmd groups the workflow inspection subcommands.
var PipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Inspect the CI workflow definitions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflows and what triggers them",
	RunE:  ef_cli.Wrap(runList),
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check workflow definitions for structural problems",
	RunE:  ef_cli.Wrap(runValidate),
}

func init() {
	PipelineCmd.AddCommand(listCmd)
	PipelineCmd.AddCommand(validateCmd)
}

func runList(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	workflows, err := pipeline.LoadWorkflows(rc, dir)
	if err != nil {
		return err
	}
	if len(workflows) == 0 {
		logger.Info("terminal prompt: No workflow definitions found")
		return nil
	}

	for _, wf := range workflows {
		s := pipeline.Summarize(wf)
		logger.Info(fmt.Sprintf("terminal prompt: %s (%s): %d jobs, runs on %s",
			s.Name, s.Path, s.Jobs, strings.Join(s.Triggers, "; ")))
	}
	return nil
}

func runValidate(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	workflows, err := pipeline.LoadWorkflows(rc, dir)
	if err != nil {
		return err
	}

	failed := false
	for _, wf := range workflows {
		if err := pipeline.Validate(wf); err != nil {
			failed = true
			logger.Info("terminal prompt: " + err.Error())
		}
	}
	if failed {
		return fmt.Errorf("workflow validation failed")
	}

	logger.Info(fmt.Sprintf("terminal prompt: %d workflows validated, no problems found", len(workflows)))
	return nil
}
