package domain

// ValidationMode selects how the base validator compares snapshots.
type ValidationMode string

const (
	// ModeMetadata compares versions and the recorded artifact metadata.
	ModeMetadata ValidationMode = "metadata"
	// ModeManifest compares the two manifests only.
	ModeManifest ValidationMode = "manifest"
)

// DefaultSettingsKey holds build settings expected of every root pod.
const DefaultSettingsKey = "*"

// Config is the resolved configuration of a validation run.
// All paths are absolute.
type Config struct {
	Root                   string
	LockfilePath           string
	PrebuiltLockfilePath   string
	GeneratedFrameworksDir string
	Mode                   ValidationMode
	DevPodsEnabled         bool
	IgnoredPods            ModuleSet
	BuildSettings          map[string]map[string]string
}

// SettingsExpectation returns the expected build settings per root, merging
// the per-root entries over the defaults. It returns nil when no build settings
// are configured.
func (c *Config) SettingsExpectation() SettingsExpectation {
	if c == nil || len(c.BuildSettings) == 0 {
		return nil
	}
	defaults := c.BuildSettings[DefaultSettingsKey]
	return func(root string) map[string]string {
		overrides := c.BuildSettings[root]
		if len(defaults) == 0 && len(overrides) == 0 {
			return nil
		}
		expected := make(map[string]string, len(defaults)+len(overrides))
		for k, v := range defaults {
			expected[k] = v
		}
		for k, v := range overrides {
			expected[k] = v
		}
		return expected
	}
}
