// pkg/commit/orchestrator.go
//
// Commit orchestration state machine.
//
// Assess: verify the working tree and collect pending paths.
// Intervene: prompt once for a strategy and record commits accordingly.
// Evaluate: report per-step progress and suggested follow-up actions.

package commit

import (
	"fmt"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
)

// Recorder is the version-control store surface the orchestrator depends on.
// Both operations are assumed atomic at the granularity of one commit.
type Recorder interface {
	// Record commits exactly the given paths with the given message.
	Record(rc *ef_io.RuntimeContext, paths []string, message string) error
	// RecordAll commits every pending change with the given message.
	RecordAll(rc *ef_io.RuntimeContext, message string) error
}

// Orchestrator walks pending working-tree changes into commits according to
// a single operator-selected strategy.
type Orchestrator struct {
	recorder Recorder
	groups   []Group
}

// NewOrchestrator builds an orchestrator over the given recorder using the
// static scope table.
func NewOrchestrator(recorder Recorder) *Orchestrator {
	return &Orchestrator{
		recorder: recorder,
		groups:   Groups(),
	}
}

// Run executes the chosen strategy over the pending path set. Pending must
// already be known non-empty; the no-changes case is handled by the caller
// because it is a successful no-op, not an error.
func (o *Orchestrator) Run(rc *ef_io.RuntimeContext, strategy Strategy, pending []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	switch strategy {
	case StrategyGranular:
		if err := o.runGranular(rc, pending); err != nil {
			return err
		}
	case StrategyAggregate:
		logger.Info("terminal prompt: Recording all pending changes as a single commit")
		if err := o.recorder.RecordAll(rc, AggregateMessage); err != nil {
			return cerr.Wrap(err, "aggregate commit failed")
		}
	case StrategyCancel:
		logger.Info("terminal prompt: Cancelled, nothing was recorded")
		return nil
	default:
		return cerr.AssertionFailedf("unhandled strategy %d", strategy)
	}

	o.printFollowUps(rc)
	return nil
}

// runGranular applies every group strictly in order. Empty groups are
// skipped silently. A recording failure aborts the remaining sequence;
// commits already recorded stay recorded.
func (o *Orchestrator) runGranular(rc *ef_io.RuntimeContext, pending []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	total := len(o.groups)
	recorded := 0

	for i, group := range o.groups {
		paths := group.Select(pending)
		if len(paths) == 0 {
			logger.Debug("No pending paths for group, skipping",
				zap.String("group", group.Name),
				zap.Int("step", i+1))
			continue
		}

		logger.Info(fmt.Sprintf("terminal prompt: [step %d of %d] Committing %s (%d files)",
			i+1, total, group.Name, len(paths)))

		if err := o.recorder.Record(rc, paths, group.Message); err != nil {
			logger.Error("Recording failed, aborting remaining sequence",
				zap.String("group", group.Name),
				zap.Int("step", i+1),
				zap.Int("recorded_before_failure", recorded),
				zap.Error(err))
			return cerr.Wrapf(err,
				"step %d of %d (%s) failed; %d earlier commits remain recorded",
				i+1, total, group.Name, recorded)
		}
		recorded++
	}

	logger.Info(fmt.Sprintf("terminal prompt: Done, %d commits recorded", recorded))
	return nil
}

// printFollowUps lists the suggested next actions. These are informational
// only; nothing is executed.
func (o *Orchestrator) printFollowUps(rc *ef_io.RuntimeContext) {
	logger := otelzap.Ctx(rc.Ctx)

	logger.Info("terminal prompt: Suggested next steps:")
	logger.Info("terminal prompt:   git log --oneline        inspect the recorded history")
	logger.Info("terminal prompt:   git push -u origin main  push to the remote")
	logger.Info("terminal prompt:   configure repository secrets for the CI pipelines")
	logger.Info("terminal prompt:   git checkout -b develop  create a working branch")
}
