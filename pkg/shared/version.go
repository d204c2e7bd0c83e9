// pkg/shared/version.go

package shared

// AppID is the identifier used for XDG state paths, config files and telemetry.
const AppID = "efops"

// Version is stamped at build time via -ldflags; the default marks dev builds.
var Version = "0.0.0-dev"
