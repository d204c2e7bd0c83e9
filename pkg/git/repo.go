// pkg/git/repo.go

package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
	"github.com/sergiomgn/EasyFinance/pkg/ef_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// VerifyRepository checks that dir is inside a valid git working tree.
// Detection walks up the directory tree the same way the git CLI does.
func VerifyRepository(rc *ef_io.RuntimeContext, dir string) error {
	logger := otelzap.Ctx(rc.Ctx)

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return ef_err.NewGitError(
			fmt.Sprintf("not a git repository: %s", dir),
			ef_err.ErrNotARepository,
			"Initialize one first: git init",
			"Then configure your identity: git config user.name / user.email",
		)
	}

	if head, err := repo.Head(); err == nil {
		logger.Debug("Repository verified",
			zap.String("dir", dir),
			zap.String("head", head.Hash().String()[:8]),
			zap.String("ref", head.Name().Short()))
	} else {
		// A repository with no commits yet is still a valid repository.
		logger.Debug("Repository verified (no commits yet)", zap.String("dir", dir))
	}

	return nil
}

// CurrentCommit returns the HEAD commit hash, or empty for an unborn branch.
func CurrentCommit(rc *ef_io.RuntimeContext, dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", nil
	}
	return head.Hash().String(), nil
}
