package validator

import (
	"context"
	"encoding/json"
	"fmt"

	"go.trai.ch/bincache/internal/core/domain"
)

// BaseOptions configures a BaseValidator.
type BaseOptions struct {
	// Current is the manifest of the current lockfile.
	Current domain.Manifest
	// Prebuilt is the manifest recorded at prebuild time, nil if there is none.
	Prebuilt domain.Manifest
	// Subspecs groups the subspecs of the current manifest under their roots.
	Subspecs domain.SubspecGrouping
	// Settings returns the expected build settings per root. Nil disables the check.
	Settings domain.SettingsExpectation
	// Metadata loads the recorded artifact metadata.
	Metadata *MetadataCache
	// Mode selects full metadata validation or the manifest-only comparison.
	Mode domain.ValidationMode
}

// BaseValidator computes cache verdicts by comparing the current manifest with
// the prebuilt one and with the recorded artifact metadata.
type BaseValidator struct {
	opts BaseOptions
}

// NewBaseValidator creates a new BaseValidator.
func NewBaseValidator(opts BaseOptions) *BaseValidator {
	if opts.Mode == "" {
		opts.Mode = domain.ModeMetadata
	}
	if opts.Metadata == nil {
		opts.Metadata = NewMetadataCache(nil, "")
	}
	return &BaseValidator{opts: opts}
}

// Validate computes a fresh result in the configured mode and merges it into accumulated.
func (v *BaseValidator) Validate(_ context.Context, accumulated domain.ValidationResult) (domain.ValidationResult, error) {
	if v.opts.Mode == domain.ModeManifest {
		return domain.Merge(accumulated, v.ValidateWithManifest()), nil
	}

	fresh, err := v.ValidatePods()
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return domain.Merge(accumulated, fresh), nil
}

// ValidateWithManifest compares the prebuilt manifest with the current one
// without looking at artifact metadata.
func (v *BaseValidator) ValidateWithManifest() domain.ValidationResult {
	changes := domain.DiffManifests(v.opts.Prebuilt, v.opts.Current)

	b := domain.NewResultBuilder()
	for _, id := range changes.Added {
		b.AddMissed(id, "Added from Podfile")
	}
	for _, id := range changes.Changed {
		b.AddMissed(id, "Updated from Podfile")
	}
	for _, id := range changes.Unchanged {
		b.AddHit(id)
	}
	return b.Result()
}

// ValidatePods checks every module of the current manifest, aggregating
// subspec verdicts into their parents.
func (v *BaseValidator) ValidatePods() (domain.ValidationResult, error) {
	b := domain.NewResultBuilder()
	checked := make(domain.ModuleSet)

	for _, parent := range v.opts.Subspecs.Parents() {
		// Children missing from the current manifest are skipped. Local pods
		// may declare a different subspec set than the one being validated.
		var children []string
		for _, child := range v.opts.Subspecs[parent] {
			if v.opts.Current.Has(child) {
				children = append(children, child)
			}
		}
		if len(children) == 0 {
			continue
		}

		var missedChildren []string
		for _, child := range children {
			if err := v.checkModule(b, child); err != nil {
				return domain.ValidationResult{}, err
			}
			checked.Add(child)
			if !b.IsHit(child) {
				missedChildren = append(missedChildren, child)
			}
		}

		if !v.opts.Current.Has(parent) {
			continue
		}
		if len(missedChildren) == 0 {
			b.AddHit(parent)
		} else {
			b.AddMissed(parent, "Subspec pods were missed: "+toJSON(missedChildren))
		}
	}

	for _, id := range v.opts.Current.IDs() {
		if _, isParent := v.opts.Subspecs[id]; isParent || checked.Has(id) {
			continue
		}
		if err := v.checkModule(b, id); err != nil {
			return domain.ValidationResult{}, err
		}
	}

	return b.Result(), nil
}

// checkModule records the verdict of a single module into b.
// Modules absent from the current manifest are not applicable and record nothing.
func (v *BaseValidator) checkModule(b *domain.ResultBuilder, id string) error {
	version, ok := v.opts.Current[id]
	if !ok {
		return nil
	}
	root := domain.Root(id)

	prebuiltVersion, ok := v.opts.Prebuilt[id]
	if !ok {
		b.AddMissed(id, fmt.Sprintf("Not available (%s)", version))
		return nil
	}
	if prebuiltVersion != version {
		b.AddMissed(id, fmt.Sprintf("Outdated: (prebuilt: %s) vs (%s)", prebuiltVersion, version))
		return nil
	}

	md, err := v.opts.Metadata.Load(root)
	if err != nil {
		return err
	}
	if md == nil {
		b.AddMissed(id, metadataNotAvailable(root))
		return nil
	}

	if diff := v.incompatibleSettings(root, md); len(diff) > 0 {
		b.AddMissed(id, "Incompatible: "+toJSON(diff))
		return nil
	}

	b.AddHit(id)
	return nil
}

// incompatibleSettings diffs the expected build settings of root against the
// recorded ones. Settings the metadata does not record are not compared.
func (v *BaseValidator) incompatibleSettings(root string, md *domain.ArtifactMetadata) map[string]domain.SettingDiff {
	if v.opts.Settings == nil {
		return nil
	}

	diff := make(map[string]domain.SettingDiff)
	for key, expected := range v.opts.Settings(root) {
		prebuilt, ok := md.BuildSettings[key]
		if !ok || prebuilt == expected {
			continue
		}
		diff[key] = domain.SettingDiff{Current: expected, Prebuilt: prebuilt}
	}
	return diff
}

func metadataNotAvailable(root string) string {
	return fmt.Sprintf("Metadata not available (probably %s.zip is not in %s)", root, domain.GeneratedFrameworksDirName)
}

// toJSON renders v for a human readable reason. Map keys come out sorted.
func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
