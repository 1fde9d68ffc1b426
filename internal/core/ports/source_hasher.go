package ports

// SourceHasher computes content digests of pod source directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_hasher.go -destination=mocks/mock_source_hasher.go -package=mocks
type SourceHasher interface {
	// HashDir computes a digest over the files below dir.
	HashDir(dir string) (string, error)
}
