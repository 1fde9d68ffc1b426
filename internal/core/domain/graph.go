package domain

// DependencyGraph is a directed graph over root pods.
// An edge A -> B means A depends on B. The reverse edges are kept alongside so
// the graph can answer "who depends on X" queries.
type DependencyGraph struct {
	deps    map[string]ModuleSet
	clients map[string]ModuleSet
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps:    make(map[string]ModuleSet),
		clients: make(map[string]ModuleSet),
	}
}

// AddModule adds a node without edges. Adding an existing node is a no-op.
func (g *DependencyGraph) AddModule(name string) {
	if _, ok := g.deps[name]; !ok {
		g.deps[name] = make(ModuleSet)
	}
	if _, ok := g.clients[name]; !ok {
		g.clients[name] = make(ModuleSet)
	}
}

// AddDependency records that client depends on dep, adding missing nodes.
// Self edges are ignored, they appear when one subspec depends on a sibling.
func (g *DependencyGraph) AddDependency(client, dep string) {
	g.AddModule(client)
	g.AddModule(dep)
	if client == dep {
		return
	}
	g.deps[client].Add(dep)
	g.clients[dep].Add(client)
}

// Len returns the number of nodes.
func (g *DependencyGraph) Len() int {
	return len(g.deps)
}

// DependenciesOf returns the direct dependencies of name in sorted order.
func (g *DependencyGraph) DependenciesOf(name string) []string {
	return g.deps[name].Sorted()
}

// ClientsOf returns every module that transitively depends on any of roots,
// in sorted order. A queried root is only part of the answer when it is
// itself reachable from another queried root.
//
// The traversal is a breadth-first search over the reverse edges.
func (g *DependencyGraph) ClientsOf(roots []string) []string {
	visited := make(ModuleSet)
	queue := make([]string, 0, len(roots))
	queue = append(queue, roots...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for client := range g.clients[current] {
			if visited.Has(client) {
				continue
			}
			visited.Add(client)
			queue = append(queue, client)
		}
	}

	return visited.Sorted()
}
