package ports

import "go.trai.ch/bincache/internal/core/domain"

// LockfileLoader reads pod lockfiles.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile_loader.go -destination=mocks/mock_lockfile_loader.go -package=mocks
type LockfileLoader interface {
	// Load parses the lockfile at path.
	// Returns nil, nil if the file does not exist.
	Load(path string) (*domain.Lockfile, error)
}
