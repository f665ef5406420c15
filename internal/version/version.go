package version

import "fmt"

const name = "tinyhttpd"

// Set at build time with -ldflags "-X tinyhttpd/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", name, Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}

// ServerToken is the product token sent in the Server response header.
func ServerToken() string {
	v := GetShortVersion()
	if v == "" {
		return name
	}
	return name + "/" + v
}
