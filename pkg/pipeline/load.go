package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
)

// WorkflowDir is the conventional location of workflow definitions,
// relative to the repository root.
const WorkflowDir = ".github/workflows"

// LoadWorkflows parses every workflow definition under repoDir. Files that
// fail to parse are collected into a single aggregated error alongside the
// workflows that did parse, so one broken file does not hide the rest.
func LoadWorkflows(rc *ef_io.RuntimeContext, repoDir string) ([]Workflow, error) {
	logger := otelzap.Ctx(rc.Ctx)

	dir := filepath.Join(repoDir, filepath.FromSlash(WorkflowDir))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No workflow directory", zap.String("dir", dir))
			return nil, nil
		}
		return nil, cerr.Wrapf(err, "reading workflow directory %s", dir)
	}

	var workflows []Workflow
	var errs *multierror.Error
	broken := 0

	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var wf Workflow
		if err := ef_io.ReadYAML(rc.Ctx, path, &wf); err != nil {
			errs = multierror.Append(errs, cerr.Wrapf(err, "parsing %s", entry.Name()))
			broken++
			continue
		}
		wf.Path = filepath.ToSlash(filepath.Join(WorkflowDir, entry.Name()))
		if wf.Name == "" {
			wf.Name = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		}
		workflows = append(workflows, wf)
	}

	sort.Slice(workflows, func(i, j int) bool { return workflows[i].Path < workflows[j].Path })

	logger.Debug("Workflows loaded",
		zap.Int("count", len(workflows)),
		zap.Int("errors", broken))

	return workflows, errs.ErrorOrNil()
}

func isYAML(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yml" || ext == ".yaml"
}
