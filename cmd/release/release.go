// Package release implements the release tag commands.
package release

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_cli"
	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/git"
	"github.com/sergiomgn/EasyFinance/pkg/release"
)

// ReleaseCmd groups the release tag subcommands.
var ReleaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Validate and inspect release tags",
}

var checkCmd = &cobra.Command{
	Use:   "check <tag>",
	Short: "Check whether a tag name would trigger the release pipeline",
	Args:  cobra.ExactArgs(1),
	RunE:  ef_cli.Wrap(runCheck),
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List release tags in version order",
	RunE:  ef_cli.Wrap(runList),
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Suggest the next patch release tag",
	RunE:  ef_cli.Wrap(runNext),
}

func init() {
	ReleaseCmd.AddCommand(checkCmd)
	ReleaseCmd.AddCommand(listCmd)
	ReleaseCmd.AddCommand(nextCmd)
}

func runCheck(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	v, err := release.ValidateTag(args[0])
	if err != nil {
		return ef_err.NewExpectedError(rc.Ctx, err)
	}

	logger.Info(fmt.Sprintf("terminal prompt: %s is a valid release tag (version %s)", args[0], v))
	return nil
}

func runList(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := git.VerifyRepository(rc, dir); err != nil {
		return ef_err.NewExpectedError(rc.Ctx, err)
	}

	releases, err := release.ListReleases(rc, dir)
	if err != nil {
		return err
	}
	if len(releases) == 0 {
		logger.Info("terminal prompt: No release tags found")
		return nil
	}
	for _, tag := range releases {
		logger.Info("terminal prompt: " + tag)
	}
	return nil
}

func runNext(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := git.VerifyRepository(rc, dir); err != nil {
		return ef_err.NewExpectedError(rc.Ctx, err)
	}

	next, err := release.NextPatch(rc, dir)
	if err != nil {
		return err
	}
	logger.Info("terminal prompt: Next patch release: " + next)
	return nil
}
