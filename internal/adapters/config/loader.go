// Package config provides the configuration loader for bincache.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest bincache.yaml at or above cwd and resolves it.
// Without a config file the defaults apply, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		if l.Logger != nil {
			l.Logger.Info("no " + domain.ConfigFileName + " found, using defaults")
		}
		return resolve(filepath.Clean(cwd), &File{})
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return resolve(filepath.Dir(configPath), &file)
}

// findConfiguration returns the path of the nearest config file, or "" if
// there is none up to the filesystem root.
func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		_, statErr := os.Stat(candidate)
		if statErr == nil {
			return candidate, nil
		}
		if !errors.Is(statErr, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(statErr, domain.ErrPathStatFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

// resolve applies the defaults to file and makes every path absolute against root.
func resolve(root string, file *File) (*domain.Config, error) {
	mode := domain.ValidationMode(file.Mode)
	switch mode {
	case "":
		mode = domain.ModeMetadata
	case domain.ModeMetadata, domain.ModeManifest:
	default:
		return nil, zerr.With(domain.ErrInvalidMode, "mode", file.Mode)
	}

	return &domain.Config{
		Root:                   root,
		LockfilePath:           resolvePath(root, file.Lockfile, domain.DefaultLockfileName),
		PrebuiltLockfilePath:   resolvePath(root, file.PrebuiltLockfile, domain.DefaultPrebuiltLockfilePath()),
		GeneratedFrameworksDir: resolvePath(root, file.GeneratedFrameworks, domain.DefaultGeneratedFrameworksPath()),
		Mode:                   mode,
		DevPodsEnabled:         file.DevPodsEnabled,
		IgnoredPods:            domain.NewModuleSet(file.IgnoredPods...),
		BuildSettings:          file.BuildSettings,
	}, nil
}

func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// ParseMode validates a mode given on the command line.
func ParseMode(s string) (domain.ValidationMode, error) {
	switch mode := domain.ValidationMode(s); mode {
	case domain.ModeMetadata, domain.ModeManifest:
		return mode, nil
	default:
		return "", zerr.With(domain.ErrInvalidMode, "mode", s)
	}
}
