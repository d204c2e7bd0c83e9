// Package git provides the version-control operations the CLI consumes:
// repository detection, working-tree state queries, and commit recording.
package git

// Status describes the current working-tree state.
type Status struct {
	Branch       string
	IsClean      bool
	Staged       []string
	Modified     []string
	Untracked    []string
	HasConflicts bool
}

// PendingPaths returns every path with uncommitted changes, staged or not.
func (s *Status) PendingPaths() []string {
	paths := make([]string, 0, len(s.Staged)+len(s.Modified)+len(s.Untracked))
	paths = append(paths, s.Staged...)
	paths = append(paths, s.Modified...)
	paths = append(paths, s.Untracked...)
	return paths
}
