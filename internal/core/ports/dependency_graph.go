package ports

// DependencyGraph answers reverse reachability queries over root pods.
//
//go:generate go run go.uber.org/mock/mockgen -source=dependency_graph.go -destination=mocks/mock_dependency_graph.go -package=mocks
type DependencyGraph interface {
	// ClientsOf returns every module that transitively depends on any of roots.
	// Implementations must return the full transitive set, not only direct dependents.
	ClientsOf(roots []string) []string
}
