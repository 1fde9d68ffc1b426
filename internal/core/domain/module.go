// Package domain contains the core domain models for prebuilt pod cache validation.
package domain

import (
	"slices"
	"strings"
)

// SubspecSeparator separates a root pod name from its subspec suffix ("A/Sub").
const SubspecSeparator = "/"

// Root returns the root pod name of a module id by dropping any subspec suffix.
func Root(id string) string {
	root, _, _ := strings.Cut(id, SubspecSeparator)
	return root
}

// IsSubspec reports whether id names a subspec rather than a root pod.
func IsSubspec(id string) bool {
	return strings.Contains(id, SubspecSeparator)
}

// Manifest maps module ids to their pinned version strings.
type Manifest map[string]string

// Has reports whether id is pinned in the manifest.
func (m Manifest) Has(id string) bool {
	_, ok := m[id]
	return ok
}

// IDs returns the module ids of the manifest in sorted order.
func (m Manifest) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SubspecGrouping maps a parent root to its subspec children.
// Children are kept sorted.
type SubspecGrouping map[string][]string

// Parents returns the parent roots in sorted order.
func (g SubspecGrouping) Parents() []string {
	parents := make([]string, 0, len(g))
	for p := range g {
		parents = append(parents, p)
	}
	slices.Sort(parents)
	return parents
}

// GroupSubspecs derives the subspec grouping of a manifest.
// Every id carrying a subspec suffix is grouped under its root.
func GroupSubspecs(m Manifest) SubspecGrouping {
	g := make(SubspecGrouping)
	for _, id := range m.IDs() {
		if !IsSubspec(id) {
			continue
		}
		root := Root(id)
		g[root] = append(g[root], id)
	}
	return g
}

// ModuleSet is a set of module ids.
type ModuleSet map[string]struct{}

// NewModuleSet creates a set holding the given ids.
func NewModuleSet(ids ...string) ModuleSet {
	s := make(ModuleSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set is empty.
func (s ModuleSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s ModuleSet) Add(id string) {
	s[id] = struct{}{}
}

// HasRoot reports whether root(id) is in the set.
func (s ModuleSet) HasRoot(id string) bool {
	return s.Has(Root(id))
}

// Union returns a new set holding the ids of s and other.
func (s ModuleSet) Union(other ModuleSet) ModuleSet {
	out := make(ModuleSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Clone returns a copy of the set. Cloning nil yields an empty set.
func (s ModuleSet) Clone() ModuleSet {
	out := make(ModuleSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids of the set in sorted order.
func (s ModuleSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
