// Package version exposes the build version of the refreshversions binary.
package version

// version is overridden at build time with
// -ldflags "-X github.com/starsep/refreshVersions/internal/version.version=1.2.3".
var version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
