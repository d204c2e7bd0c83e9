// Package telemetry implements the telemetry opt-in commands.
package telemetry

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_cli"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/interaction"
	tel "github.com/sergiomgn/EasyFinance/pkg/telemetry"
)

// TelemetryCmd groups the telemetry opt-in subcommands.
var TelemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Manage anonymous usage telemetry",
	Long:  "Telemetry is off by default. When enabled, command spans are written to a\nlocal JSONL file only; nothing leaves the machine.",
}

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable local telemetry recording",
	RunE:  ef_cli.Wrap(runOn),
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable telemetry recording",
	RunE:  ef_cli.Wrap(runOff),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether telemetry is enabled",
	RunE:  ef_cli.Wrap(runStatus),
}

func init() {
	TelemetryCmd.AddCommand(onCmd)
	TelemetryCmd.AddCommand(offCmd)
	TelemetryCmd.AddCommand(statusCmd)
}

func runOn(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if interaction.IsInteractive() {
		ok := interaction.PromptYesNo(rc.Ctx,
			"Record anonymous command spans to a local file?", false)
		if !ok {
			logger.Info("terminal prompt: Telemetry left disabled")
			return nil
		}
	}

	if err := tel.Enable(); err != nil {
		return err
	}
	logger.Info("terminal prompt: Telemetry enabled, spans are recorded locally")
	return nil
}

func runOff(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if err := tel.Disable(); err != nil {
		return err
	}
	logger.Info("terminal prompt: Telemetry disabled")
	return nil
}

func runStatus(rc *ef_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if tel.IsEnabled() {
		logger.Info("terminal prompt: Telemetry is enabled (install id " + tel.AnonTelemetryID() + ")")
	} else {
		logger.Info("terminal prompt: Telemetry is disabled")
	}
	return nil
}
