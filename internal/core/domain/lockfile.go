package domain

// Lockfile represents a resolved pod snapshot, either the current Podfile.lock
// or the manifest recorded when the prebuilt artifacts were produced.
type Lockfile struct {
	// Pods pins every resolved module id (roots and subspecs) to a version.
	Pods Manifest

	// Dependencies lists, per module id, the module ids it depends on as
	// written in the lockfile.
	Dependencies map[string][]string

	// DevPods maps the root of a locally developed pod to its source path.
	DevPods map[string]string

	// Checksums maps a root pod to its spec checksum.
	Checksums map[string]string
}

// Manifest returns the pinned versions. A nil lockfile has no manifest.
func (l *Lockfile) Manifest() Manifest {
	if l == nil {
		return nil
	}
	return l.Pods
}

// DevPodSet returns the roots of the locally developed pods.
func (l *Lockfile) DevPodSet() ModuleSet {
	if l == nil {
		return ModuleSet{}
	}
	s := make(ModuleSet, len(l.DevPods))
	for root := range l.DevPods {
		s.Add(root)
	}
	return s
}

// SubspecGrouping groups the subspecs of the lockfile under their roots.
func (l *Lockfile) SubspecGrouping() SubspecGrouping {
	return GroupSubspecs(l.Manifest())
}

// DependencyGraph builds the root-level dependency graph of the lockfile.
func (l *Lockfile) DependencyGraph() *DependencyGraph {
	g := NewDependencyGraph()
	if l == nil {
		return g
	}
	for _, id := range l.Pods.IDs() {
		g.AddModule(Root(id))
		for _, dep := range l.Dependencies[id] {
			g.AddDependency(Root(id), Root(dep))
		}
	}
	return g
}
