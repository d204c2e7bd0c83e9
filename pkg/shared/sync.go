// pkg/shared/sync.go

package shared

import "go.uber.org/zap"

// SafeSync flushes the global logger, swallowing the EBADF/ENOTTY errors that
// zap returns when stdout is a terminal.
func SafeSync() {
	_ = zap.L().Sync()
}
