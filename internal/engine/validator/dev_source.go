package validator

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
	"go.trai.ch/zerr"
)

// DevSourceOptions configures a DevSourceValidator.
type DevSourceOptions struct {
	// Current is the manifest of the current lockfile.
	Current domain.Manifest
	// Sources maps a dev pod root to its absolute source directory.
	Sources map[string]string
	// Metadata loads the recorded artifact metadata.
	Metadata *MetadataCache
	// Hasher digests the source directories.
	Hasher ports.SourceHasher
}

// DevSourceValidator invalidates prebuilt dev pods whose local sources changed
// since the artifact was built.
type DevSourceValidator struct {
	opts DevSourceOptions
}

// NewDevSourceValidator creates a new DevSourceValidator.
func NewDevSourceValidator(opts DevSourceOptions) *DevSourceValidator {
	if opts.Metadata == nil {
		opts.Metadata = NewMetadataCache(nil, "")
	}
	return &DevSourceValidator{opts: opts}
}

// Validate compares the source hash of every dev pod of the current manifest
// with the hash recorded in its metadata.
func (v *DevSourceValidator) Validate(_ context.Context, accumulated domain.ValidationResult) (domain.ValidationResult, error) {
	if v.opts.Hasher == nil {
		return accumulated, nil
	}

	idsByRoot := make(map[string][]string)
	for _, id := range v.opts.Current.IDs() {
		root := domain.Root(id)
		idsByRoot[root] = append(idsByRoot[root], id)
	}

	roots := make([]string, 0, len(v.opts.Sources))
	for root := range v.opts.Sources {
		roots = append(roots, root)
	}
	slices.Sort(roots)

	b := domain.NewResultBuilder()
	for _, root := range roots {
		ids := idsByRoot[root]
		if len(ids) == 0 {
			continue
		}

		reason, err := v.checkSource(root)
		if err != nil {
			return domain.ValidationResult{}, err
		}
		for _, id := range ids {
			if reason == "" {
				b.AddHit(id)
			} else {
				b.AddMissed(id, reason)
			}
		}
	}

	return domain.Merge(accumulated, b.Result()), nil
}

// checkSource returns the miss reason of root, or "" when its sources match.
func (v *DevSourceValidator) checkSource(root string) (string, error) {
	md, err := v.opts.Metadata.Load(root)
	if err != nil {
		return "", err
	}
	if md == nil {
		return metadataNotAvailable(root), nil
	}

	hash, err := v.opts.Hasher.HashDir(v.opts.Sources[root])
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceHashFailed.Error()), "pod", root)
	}
	if md.SourceHash != hash {
		return fmt.Sprintf("Source changed: (prebuilt: %s) vs (%s)", md.SourceHash, hash), nil
	}
	return "", nil
}
