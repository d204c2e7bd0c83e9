package pipeline

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks a parsed workflow for the structural problems the
// external scheduler would reject or silently ignore. All findings are
// aggregated so the operator sees every issue at once.
func Validate(wf Workflow) error {
	var errs *multierror.Error

	if !wf.On.HasAnyTrigger() {
		errs = multierror.Append(errs,
			fmt.Errorf("%s: no push, pull_request or schedule trigger, the workflow will never run", wf.Path))
	}

	if len(wf.Jobs) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("%s: no jobs defined", wf.Path))
	}

	for name, job := range wf.Jobs {
		if job.RunsOn == "" {
			errs = multierror.Append(errs,
				fmt.Errorf("%s: job %q has no runs-on", wf.Path, name))
		}
		if len(job.Steps) == 0 {
			errs = multierror.Append(errs,
				fmt.Errorf("%s: job %q has no steps", wf.Path, name))
		}
		for i, step := range job.Steps {
			if step.Uses == "" && step.Run == "" {
				errs = multierror.Append(errs,
					fmt.Errorf("%s: job %q step %d has neither uses nor run", wf.Path, name, i+1))
			}
		}
	}

	return errs.ErrorOrNil()
}
