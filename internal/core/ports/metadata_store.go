package ports

import "go.trai.ch/bincache/internal/core/domain"

// MetadataStore loads the metadata recorded next to prebuilt frameworks.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata_store.go -destination=mocks/mock_metadata_store.go -package=mocks
type MetadataStore interface {
	// Load retrieves the metadata of a root pod from the frameworks directory.
	// Returns nil, nil if the pod has no metadata.
	Load(frameworksDir, root string) (*domain.ArtifactMetadata, error)
}
