package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "bincache.yaml"

	// DefaultLockfileName is the name of the current lockfile.
	DefaultLockfileName = "Podfile.lock"

	// PrebuildDirName is the name of the directory holding prebuilt artifacts.
	PrebuildDirName = "_Prebuild"

	// PrebuiltLockfileName is the name of the manifest recorded at prebuild time.
	PrebuiltLockfileName = "Manifest.lock"

	// GeneratedFrameworksDirName is the name of the prebuilt frameworks directory.
	GeneratedFrameworksDirName = "GeneratedFrameworks"

	// MetadataFileName is the name of the metadata file inside a framework directory.
	MetadataFileName = "metadata.json"
)

// DefaultPrebuiltLockfilePath returns the default path of the prebuilt manifest.
// It joins _Prebuild and Manifest.lock.
func DefaultPrebuiltLockfilePath() string {
	return filepath.Join(PrebuildDirName, PrebuiltLockfileName)
}

// DefaultGeneratedFrameworksPath returns the default path of the prebuilt frameworks.
// It joins _Prebuild and GeneratedFrameworks.
func DefaultGeneratedFrameworksPath() string {
	return filepath.Join(PrebuildDirName, GeneratedFrameworksDirName)
}
