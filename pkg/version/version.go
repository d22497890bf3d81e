package version

// Set at build time via -ldflags "-X github.com/guimove/workmap/pkg/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
