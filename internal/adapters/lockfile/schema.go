package lockfile

import "gopkg.in/yaml.v3"

// File represents the sections of a Podfile.lock the validator reads.
// PODS entries are either "Name (version)" scalars or single-key mappings
// from such a scalar to the pod's dependency list.
type File struct {
	Pods            []yaml.Node                  `yaml:"PODS"`
	ExternalSources map[string]map[string]string `yaml:"EXTERNAL SOURCES"`
	SpecChecksums   map[string]string            `yaml:"SPEC CHECKSUMS"`
}

// pathKey marks an external source checked out locally.
const pathKey = ":path"
