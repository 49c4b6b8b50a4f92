package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/ddbg/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/ddbg/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/ddbg/internal/version.Date={{.Date}}
)

// String is the one-line version banner.
func String() string {
	s := "ddbg " + Version
	if Commit != "" && Commit != "unknown" {
		s += " (" + Commit + ")"
	}
	return s
}
