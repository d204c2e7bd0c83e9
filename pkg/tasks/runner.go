package tasks

import (
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/execute"
	"github.com/sergiomgn/EasyFinance/pkg/platform"
)

// Run executes one target in dir, streaming its output to the operator.
// The target's exit code is propagated through the returned error.
func Run(rc *ef_io.RuntimeContext, dir string, target Target) error {
	logger := otelzap.Ctx(rc.Ctx)

	// Assess
	if !platform.IsCommandAvailable(target.Command) {
		return ef_err.NewDependencyError(target.Command, target.Name,
			"Install "+target.Command+" and ensure it is in PATH",
			"Run the install target first if this is a Python tool")
	}

	logger.Info("terminal prompt: Running "+target.Name,
		zap.String("command", target.Command),
		zap.Strings("args", target.Args))

	// Intervene
	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: target.Command,
		Args:    target.Args,
		Dir:     dir,
		Timeout: target.Timeout,
		Retries: target.Retries,
		Delay:   5 * time.Second,
		Stream:  true,
	})

	// Evaluate
	if err != nil {
		code := execute.ExitCode(err)
		logger.Error("Target failed",
			zap.String("target", target.Name),
			zap.Int("exit_code", code))
		return cerr.Wrapf(err, "target %s failed with exit code %d", target.Name, code)
	}

	logger.Info("terminal prompt: "+target.Name+" completed")
	return nil
}
