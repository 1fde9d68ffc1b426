package validator

import (
	"context"

	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
)

// ReasonDependenciesMissed is recorded for modules invalidated by propagation.
const ReasonDependenciesMissed = "Dependencies were missed"

// GraphOptions configures a GraphValidator.
type GraphOptions struct {
	// Graph answers "who depends on X". Propagation is skipped when nil.
	Graph ports.DependencyGraph
	// Ignored ids are never propagation sources.
	Ignored domain.ModuleSet
	// DevPods holds the roots of locally developed pods.
	DevPods domain.ModuleSet
	// DevPodsEnabled keeps dev pods eligible for propagated misses.
	DevPodsEnabled bool
	// PrebuiltAvailable reports whether a prebuilt manifest exists at all.
	PrebuiltAvailable bool
	// LibraryEvolutionSupported disables propagation when it reports true.
	LibraryEvolutionSupported func() bool
}

// GraphValidator propagates misses to every module that depends on a missed root.
//
// Misses of dev pods never propagate. A root with any hit, either itself or one
// of its subspecs, is a partial hit and does not propagate either.
type GraphValidator struct {
	opts GraphOptions
}

// NewGraphValidator creates a new GraphValidator.
func NewGraphValidator(opts GraphOptions) *GraphValidator {
	return &GraphValidator{opts: opts}
}

// Validate returns accumulated enlarged with the propagated misses.
// ClientsOf yields the full transitive closure, so a single pass is enough.
func (v *GraphValidator) Validate(_ context.Context, accumulated domain.ValidationResult) (domain.ValidationResult, error) {
	if v.libraryEvolutionSupported() || !v.opts.PrebuiltAvailable || v.opts.Graph == nil {
		return accumulated, nil
	}

	roots := v.propagationRoots(accumulated)
	if len(roots) == 0 {
		return accumulated, nil
	}

	b := domain.NewResultBuilder()
	for _, client := range v.opts.Graph.ClientsOf(roots) {
		if !v.opts.DevPodsEnabled && v.opts.DevPods.HasRoot(client) {
			continue
		}
		b.AddMissed(client, ReasonDependenciesMissed)
	}

	return domain.Merge(accumulated, b.Result()), nil
}

// propagationRoots returns the distinct missed roots that may invalidate their
// dependents, in sorted order.
func (v *GraphValidator) propagationRoots(accumulated domain.ValidationResult) []string {
	hitRoots := make(domain.ModuleSet, len(accumulated.Hit))
	for id := range accumulated.Hit {
		hitRoots.Add(domain.Root(id))
	}

	roots := make(domain.ModuleSet)
	for id := range accumulated.Discard(v.opts.Ignored).Missed {
		root := domain.Root(id)
		if v.opts.DevPods.Has(root) || hitRoots.Has(root) {
			continue
		}
		roots.Add(root)
	}
	return roots.Sorted()
}

func (v *GraphValidator) libraryEvolutionSupported() bool {
	return v.opts.LibraryEvolutionSupported != nil && v.opts.LibraryEvolutionSupported()
}
