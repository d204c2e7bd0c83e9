package commit

import (
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/git"
)

// GitRecorder records commits through the git CLI in a fixed directory.
type GitRecorder struct {
	Dir string
}

var _ Recorder = (*GitRecorder)(nil)

func (r *GitRecorder) Record(rc *ef_io.RuntimeContext, paths []string, message string) error {
	return git.StageAndCommit(rc, r.Dir, paths, message)
}

func (r *GitRecorder) RecordAll(rc *ef_io.RuntimeContext, message string) error {
	return git.CommitAll(rc, r.Dir, message)
}
