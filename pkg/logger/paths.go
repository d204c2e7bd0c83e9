// pkg/logger/paths.go

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sergiomgn/EasyFinance/pkg/shared"
	"github.com/sergiomgn/EasyFinance/pkg/xdg"
	"go.uber.org/zap/zapcore"
)

// PlatformLogPaths returns candidate log paths in order of preference.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			xdg.XDGStatePath(shared.AppID, "efops.log"),
			"./efops.log",
			"/tmp/efops/efops.log",
		}
	case "linux":
		return []string{
			xdg.XDGStatePath(shared.AppID, "efops.log"), // user-local (e.g. ~/.local/state/efops/efops.log)
			"./efops.log",                               // current working dir
			"/tmp/efops/efops.log",                      // ephemeral
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), shared.AppID, "efops.log"),
			".\\efops.log",
		}
	default:
		return []string{"./efops.log"}
	}
}

// GetLogFileWriter opens path for appending, creating parent directories with
// owner-only permissions.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := xdg.EnsureDir(path); err != nil {
		return zapcore.AddSync(os.Stderr), fmt.Errorf("log directory error: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zapcore.AddSync(os.Stderr), fmt.Errorf("failed to open log file: %w", err)
	}

	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns the first platform log path that can be opened.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		if _, err := GetLogFileWriter(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable log path found")
}
