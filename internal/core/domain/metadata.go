package domain

// ArtifactMetadata is the metadata recorded next to a prebuilt framework.
type ArtifactMetadata struct {
	// BuildSettings holds the build settings the artifact was compiled with.
	BuildSettings map[string]string `json:"build_settings,omitempty"`
	// SourceHash is the digest of the pod sources the artifact was built from.
	SourceHash string `json:"source_hash,omitempty"`
}

// SettingsExpectation returns the expected build settings for a root pod.
// A nil expectation disables build settings checks.
type SettingsExpectation func(root string) map[string]string

// SettingDiff describes a build setting whose prebuilt value differs from the
// expected one.
type SettingDiff struct {
	Current  string `json:"current"`
	Prebuilt string `json:"prebuilt"`
}
