package validator

import (
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
)

// MetadataCache memoizes artifact metadata per root pod for one validation run.
// Absence is memoized as well; load errors are not.
type MetadataCache struct {
	store   ports.MetadataStore
	dir     string
	entries map[string]*domain.ArtifactMetadata
}

// NewMetadataCache creates a cache reading from the given frameworks directory.
func NewMetadataCache(store ports.MetadataStore, frameworksDir string) *MetadataCache {
	return &MetadataCache{
		store:   store,
		dir:     frameworksDir,
		entries: make(map[string]*domain.ArtifactMetadata),
	}
}

// Load returns the metadata of root, or nil if the root has none.
func (c *MetadataCache) Load(root string) (*domain.ArtifactMetadata, error) {
	if md, ok := c.entries[root]; ok {
		return md, nil
	}
	if c.store == nil {
		c.entries[root] = nil
		return nil, nil
	}

	md, err := c.store.Load(c.dir, root)
	if err != nil {
		return nil, err
	}
	c.entries[root] = md
	return md, nil
}
