package config

// File represents the structure of the bincache.yaml configuration file.
type File struct {
	Version             string                       `yaml:"version"`
	Lockfile            string                       `yaml:"lockfile"`
	PrebuiltLockfile    string                       `yaml:"prebuiltLockfile"`
	GeneratedFrameworks string                       `yaml:"generatedFrameworks"`
	Mode                string                       `yaml:"mode"`
	DevPodsEnabled      bool                         `yaml:"devPodsEnabled"`
	IgnoredPods         []string                     `yaml:"ignoredPods"`
	BuildSettings       map[string]map[string]string `yaml:"buildSettings"`
}
