// Package release validates and orders version tags. The tag-push pipeline
// only fires for tags matching the v-prefixed semantic pattern, so a
// malformed tag silently produces no release; this package catches that
// before the tag is pushed.
package release

import (
	"fmt"
	"sort"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-version"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/sergiomgn/EasyFinance/pkg/git"
)

// ValidateTag checks that a tag name matches the release pattern the
// pipelines trigger on: a leading "v" followed by a semantic version.
func ValidateTag(tag string) (*version.Version, error) {
	if !strings.HasPrefix(tag, "v") {
		return nil, cerr.Newf("tag %q must start with \"v\" to trigger the release pipeline", tag)
	}
	v, err := version.NewSemver(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return nil, cerr.Wrapf(err, "tag %q is not a valid semantic version", tag)
	}
	return v, nil
}

// ListReleases returns the repository's release tags in ascending version
// order, skipping tags that do not match the release pattern.
func ListReleases(rc *ef_io.RuntimeContext, dir string) ([]string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	tags, err := git.ListTags(rc, dir)
	if err != nil {
		return nil, cerr.Wrap(err, "listing tags")
	}

	type tagged struct {
		name string
		ver  *version.Version
	}
	var releases []tagged
	for _, tag := range tags {
		v, err := ValidateTag(tag)
		if err != nil {
			logger.Debug("Skipping non-release tag", zap.String("tag", tag))
			continue
		}
		releases = append(releases, tagged{name: tag, ver: v})
	}

	sort.Slice(releases, func(i, j int) bool {
		return releases[i].ver.LessThan(releases[j].ver)
	})

	names := make([]string, len(releases))
	for i, r := range releases {
		names[i] = r.name
	}
	return names, nil
}

// NextPatch suggests the next patch release after the highest existing
// release tag, or v0.1.0 when no release exists yet.
func NextPatch(rc *ef_io.RuntimeContext, dir string) (string, error) {
	releases, err := ListReleases(rc, dir)
	if err != nil {
		return "", err
	}
	if len(releases) == 0 {
		return "v0.1.0", nil
	}

	latest, err := ValidateTag(releases[len(releases)-1])
	if err != nil {
		return "", err
	}
	segs := latest.Segments()
	return fmt.Sprintf("v%d.%d.%d", segs[0], segs[1], segs[2]+1), nil
}
