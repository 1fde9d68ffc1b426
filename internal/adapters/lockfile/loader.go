// Package lockfile parses CocoaPods lockfiles into domain snapshots.
package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LockfileLoader = (*Loader)(nil)

var podSpecRegex = regexp.MustCompile(`^(\S+)(?:\s+\((.+)\))?$`)

// Loader implements ports.LockfileLoader for Podfile.lock and Manifest.lock files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the lockfile at path. A missing file yields nil.
func (l *Loader) Load(path string) (*domain.Lockfile, error) {
	// #nosec G304 -- path comes from the resolved configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	lf, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lf, nil
}

// Parse decodes lockfile content. Relative :path sources resolve against baseDir.
func Parse(data []byte, baseDir string) (*domain.Lockfile, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	lf := &domain.Lockfile{
		Pods:         make(domain.Manifest, len(file.Pods)),
		Dependencies: make(map[string][]string),
		DevPods:      make(map[string]string),
		Checksums:    file.SpecChecksums,
	}

	for i := range file.Pods {
		name, version, deps, err := parsePodEntry(&file.Pods[i])
		if err != nil {
			return nil, err
		}
		lf.Pods[name] = version
		if len(deps) > 0 {
			lf.Dependencies[name] = deps
		}
	}

	for name, source := range file.ExternalSources {
		path, ok := source[pathKey]
		if !ok {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		lf.DevPods[domain.Root(name)] = filepath.Clean(path)
	}

	return lf, nil
}

// parsePodEntry decodes one PODS entry into its name, version and dependency names.
func parsePodEntry(node *yaml.Node) (string, string, []string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		name, version, err := parsePodSpec(node.Value, true)
		return name, version, nil, err

	case yaml.MappingNode:
		if len(node.Content) != 2 || node.Content[0].Kind != yaml.ScalarNode || node.Content[1].Kind != yaml.SequenceNode {
			return "", "", nil, invalidEntry(node)
		}
		name, version, err := parsePodSpec(node.Content[0].Value, true)
		if err != nil {
			return "", "", nil, err
		}

		deps := make([]string, 0, len(node.Content[1].Content))
		for _, item := range node.Content[1].Content {
			if item.Kind != yaml.ScalarNode {
				return "", "", nil, invalidEntry(item)
			}
			dep, _, err := parsePodSpec(item.Value, false)
			if err != nil {
				return "", "", nil, err
			}
			deps = append(deps, dep)
		}
		return name, version, deps, nil

	default:
		return "", "", nil, invalidEntry(node)
	}
}

// parsePodSpec splits "Name (version)". Dependency entries carry an optional
// requirement instead of a version.
func parsePodSpec(s string, versionRequired bool) (string, string, error) {
	m := podSpecRegex.FindStringSubmatch(s)
	if m == nil || (versionRequired && m[2] == "") {
		return "", "", zerr.With(domain.ErrInvalidPodEntry, "entry", s)
	}
	return m[1], m[2], nil
}

func invalidEntry(node *yaml.Node) error {
	return zerr.With(zerr.With(domain.ErrInvalidPodEntry, "line", node.Line), "value", node.Value)
}
