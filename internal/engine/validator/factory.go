package validator

import (
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
)

// Stage names, in pipeline order.
const (
	StageMetadata  = "validate metadata"
	StageManifest  = "validate manifest"
	StageDevSource = "validate dev sources"
	StageGraph     = "propagate dependencies"
)

// Snapshot holds everything a run validates. Prebuilt is nil when no
// prebuilt manifest exists.
type Snapshot struct {
	Config   *domain.Config
	Current  *domain.Lockfile
	Prebuilt *domain.Lockfile
}

// Factory assembles validation pipelines from their collaborators.
type Factory struct {
	store     ports.MetadataStore
	hasher    ports.SourceHasher
	telemetry ports.Telemetry
}

// NewFactory creates a new Factory.
func NewFactory(store ports.MetadataStore, hasher ports.SourceHasher, telemetry ports.Telemetry) *Factory {
	return &Factory{
		store:     store,
		hasher:    hasher,
		telemetry: telemetry,
	}
}

// Build creates the pipeline of one run. The base stage always comes first
// and dependency propagation always comes last.
func (f *Factory) Build(s Snapshot) *Pipeline {
	cfg := s.Config
	if cfg == nil {
		cfg = &domain.Config{}
	}
	mode := cfg.Mode
	if mode == "" {
		mode = domain.ModeMetadata
	}

	// One cache per run, shared by every stage reading metadata.
	cache := NewMetadataCache(f.store, cfg.GeneratedFrameworksDir)

	stages := make([]Stage, 0, 3)

	base := NewBaseValidator(BaseOptions{
		Current:  s.Current.Manifest(),
		Prebuilt: s.Prebuilt.Manifest(),
		Subspecs: s.Current.SubspecGrouping(),
		Settings: cfg.SettingsExpectation(),
		Metadata: cache,
		Mode:     mode,
	})
	if mode == domain.ModeManifest {
		stages = append(stages, Stage{Name: StageManifest, Validator: base})
	} else {
		stages = append(stages, Stage{Name: StageMetadata, Validator: base})
	}

	if mode == domain.ModeMetadata && cfg.DevPodsEnabled && f.hasher != nil && s.Current != nil {
		stages = append(stages, Stage{
			Name: StageDevSource,
			Validator: NewDevSourceValidator(DevSourceOptions{
				Current:  s.Current.Manifest(),
				Sources:  s.Current.DevPods,
				Metadata: cache,
				Hasher:   f.hasher,
			}),
		})
	}

	stages = append(stages, Stage{
		Name: StageGraph,
		Validator: NewGraphValidator(GraphOptions{
			Graph:             s.Current.DependencyGraph(),
			Ignored:           cfg.IgnoredPods,
			DevPods:           s.Current.DevPodSet().Union(s.Prebuilt.DevPodSet()),
			DevPodsEnabled:    cfg.DevPodsEnabled,
			PrebuiltAvailable: s.Prebuilt != nil,
		}),
	})

	return NewPipeline(f.telemetry, stages...)
}
