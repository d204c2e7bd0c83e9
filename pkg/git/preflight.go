// pkg/git/preflight.go
//
// Git preflight checks - validates the git environment before operations.
// Fail fast: detect issues BEFORE the interactive prompt.

package git

import (
	"context"
	"fmt"
	"net/mail"
	"os/exec"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CheckGitInstalled verifies the git command is available in PATH.
func CheckGitInstalled(ctx context.Context) error {
	logger := otelzap.Ctx(ctx)

	gitPath, err := exec.LookPath("git")
	if err != nil {
		return fmt.Errorf("git is not installed or not in PATH\n\n" +
			"To install:\n" +
			"  Ubuntu/Debian: sudo apt-get install git\n" +
			"  macOS:         brew install git\n" +
			"  Or visit:      https://git-scm.com/downloads")
	}

	cmd := exec.CommandContext(ctx, "git", "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git is installed at %s but failed to execute: %w", gitPath, err)
	}

	logger.Debug("Git is installed",
		zap.String("path", gitPath),
		zap.String("version", strings.TrimSpace(string(output))))

	return nil
}

// CheckGitIdentity verifies git user.name and user.email are configured for
// the repository at dir, and that the email parses as RFC 5322.
func CheckGitIdentity(ctx context.Context, dir string) error {
	logger := otelzap.Ctx(ctx)

	userName, err := getGitConfig(ctx, dir, "user.name")
	if err != nil || userName == "" {
		return identityError("user.name")
	}

	userEmail, err := getGitConfig(ctx, dir, "user.email")
	if err != nil || userEmail == "" {
		return identityError("user.email")
	}

	if _, err := mail.ParseAddress(userEmail); err != nil {
		return fmt.Errorf("git user.email %q is not a valid email address\n\n"+
			"Fix with:\n"+
			"  git config --global user.email \"your.email@example.com\"",
			userEmail)
	}

	logger.Debug("Git identity is configured",
		zap.String("user.name", userName),
		zap.String("user.email", userEmail))

	return nil
}

func getGitConfig(ctx context.Context, dir, key string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "config", "--get", key)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// git config returns exit code 1 when the key is absent
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to check %s: %w", key, err)
	}
	return strings.TrimSpace(string(output)), nil
}

func identityError(key string) error {
	return fmt.Errorf("git identity not configured: %s\n\n"+
		"Git requires both user.name and user.email to create commits.\n\n"+
		"Configure your identity:\n"+
		"  git config --global user.name \"Your Name\"\n"+
		"  git config --global user.email \"your.email@example.com\"",
		key)
}
