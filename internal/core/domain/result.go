package domain

import "slices"

// ValidationResult holds the cache verdicts of a validation run.
// Missed maps a module id to the reason it cannot be reused; Hit holds the ids
// whose prebuilt artifacts can be reused.
//
// Values are treated as immutable: Merge and Discard return fresh results.
type ValidationResult struct {
	Missed map[string]string
	Hit    ModuleSet
}

// NewValidationResult creates a result from copies of missed and hit.
// Ids present in both are recorded as missed only.
func NewValidationResult(missed map[string]string, hit ModuleSet) ValidationResult {
	r := ValidationResult{
		Missed: make(map[string]string, len(missed)),
		Hit:    make(ModuleSet, len(hit)),
	}
	for id, reason := range missed {
		r.Missed[id] = reason
	}
	for id := range hit {
		if _, ok := r.Missed[id]; !ok {
			r.Hit.Add(id)
		}
	}
	return r
}

// EmptyResult returns a result with no verdicts.
func EmptyResult() ValidationResult {
	return NewValidationResult(nil, nil)
}

// IsMissed reports whether id is recorded as missed.
func (r ValidationResult) IsMissed(id string) bool {
	_, ok := r.Missed[id]
	return ok
}

// MissedIDs returns the missed ids in sorted order.
func (r ValidationResult) MissedIDs() []string {
	ids := make([]string, 0, len(r.Missed))
	for id := range r.Missed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Merge combines two results. On a missed-key collision the reason from a is
// kept. Any id missed by either side is removed from the hit set.
func Merge(a, b ValidationResult) ValidationResult {
	missed := make(map[string]string, len(a.Missed)+len(b.Missed))
	for id, reason := range b.Missed {
		missed[id] = reason
	}
	for id, reason := range a.Missed {
		missed[id] = reason
	}
	return NewValidationResult(missed, a.Hit.Union(b.Hit))
}

// Merge is shorthand for Merge(r, other).
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	return Merge(r, other)
}

// Discard returns a copy of r without any verdict for the given ids.
func (r ValidationResult) Discard(ids ModuleSet) ValidationResult {
	out := NewValidationResult(r.Missed, r.Hit)
	for id := range ids {
		delete(out.Missed, id)
		delete(out.Hit, id)
	}
	return out
}

// ResultBuilder accumulates verdicts during a single validation call.
// It is not safe for concurrent use and must not outlive the call that owns it.
type ResultBuilder struct {
	missed map[string]string
	hit    ModuleSet
}

// NewResultBuilder creates an empty builder.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		missed: make(map[string]string),
		hit:    make(ModuleSet),
	}
}

// AddMissed records id as missed with the given reason, replacing any earlier reason.
func (b *ResultBuilder) AddMissed(id, reason string) {
	b.missed[id] = reason
}

// AddHit records id as hit.
func (b *ResultBuilder) AddHit(id string) {
	b.hit.Add(id)
}

// IsHit reports whether id has been recorded as hit and not as missed.
func (b *ResultBuilder) IsHit(id string) bool {
	_, missed := b.missed[id]
	return b.hit.Has(id) && !missed
}

// Result snapshots the accumulated verdicts. Later builder writes do not affect it.
func (b *ResultBuilder) Result() ValidationResult {
	return NewValidationResult(b.missed, b.hit)
}
