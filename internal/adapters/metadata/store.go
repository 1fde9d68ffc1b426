// Package metadata reads the artifact metadata recorded next to prebuilt frameworks.
package metadata

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataStore = (*Store)(nil)

// Store implements ports.MetadataStore over <frameworksDir>/<root>/metadata.json files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the metadata file of root inside frameworksDir.
func Path(frameworksDir, root string) string {
	return filepath.Join(frameworksDir, root, domain.MetadataFileName)
}

// Load reads the metadata of root. A missing or empty file yields nil.
// Non-string build setting values such as booleans and numbers are kept as
// their JSON text, so `true` is recorded as "true".
func (s *Store) Load(frameworksDir, root string) (*domain.ArtifactMetadata, error) {
	path := filepath.Clean(Path(frameworksDir, root))

	//nolint:gosec // Path is cleaned and built from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataUnmarshalFailed.Error()), "path", path)
	}

	return rec.toDomain(), nil
}

// record is the on-disk layout of metadata.json. Build setting values may be
// any JSON scalar; they are compared by their literal text.
type record struct {
	BuildSettings map[string]json.RawMessage `json:"build_settings"`
	SourceHash    string                     `json:"source_hash"`
}

func (r record) toDomain() *domain.ArtifactMetadata {
	md := &domain.ArtifactMetadata{SourceHash: r.SourceHash}
	if len(r.BuildSettings) == 0 {
		return md
	}

	md.BuildSettings = make(map[string]string, len(r.BuildSettings))
	for key, raw := range r.BuildSettings {
		value, ok := settingValue(raw)
		if !ok {
			continue
		}
		md.BuildSettings[key] = value
	}
	return md
}

// settingValue returns strings unquoted and other values as written.
// Null means the setting was not recorded.
func settingValue(raw json.RawMessage) (string, bool) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return text, true
}
