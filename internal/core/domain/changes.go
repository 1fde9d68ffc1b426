package domain

// ManifestChanges is the structural difference of a current manifest against
// a prebuilt one.
type ManifestChanges struct {
	Added     []string
	Changed   []string
	Unchanged []string
	Removed   []string
}

// DiffManifests compares current against prebuilt. A nil prebuilt manifest
// makes every current module added. All slices are sorted.
func DiffManifests(prebuilt, current Manifest) ManifestChanges {
	var c ManifestChanges
	for _, id := range current.IDs() {
		prebuiltVersion, ok := prebuilt[id]
		switch {
		case !ok:
			c.Added = append(c.Added, id)
		case prebuiltVersion != current[id]:
			c.Changed = append(c.Changed, id)
		default:
			c.Unchanged = append(c.Unchanged, id)
		}
	}
	for _, id := range prebuilt.IDs() {
		if !current.Has(id) {
			c.Removed = append(c.Removed, id)
		}
	}
	return c
}
