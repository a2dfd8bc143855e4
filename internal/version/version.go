package version

import "fmt"

// Name is the product name shown in help text and the dashboard title
const Name = "Productivity Boss"

// Tagline is the application's tagline used in help text
const Tagline = "Your persona-voiced focus coach, powered by ActivityWatch"

// Build information injected at build time via ldflags
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("focusboss %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
