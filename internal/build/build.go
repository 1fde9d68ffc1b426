// Package build holds build-time information.
package build

import "fmt"

// Overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
)

// String describes the build for version output.
func String() string {
	if Commit == "none" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
