// pkg/telemetry/id.go

package telemetry

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sergiomgn/EasyFinance/pkg/shared"
	"github.com/sergiomgn/EasyFinance/pkg/xdg"
)

// AnonTelemetryID returns a stable anonymous identifier for this install,
// creating one on first use. Never contains user data.
func AnonTelemetryID() string {
	path := xdg.XDGStatePath(shared.AppID, "telemetry_id")

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := uuid.New().String()
	if err := xdg.EnsureDir(path); err == nil {
		_ = os.WriteFile(path, []byte(id+"\n"), 0o600)
	}
	return id
}
