package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports/mocks"
	"go.trai.ch/bincache/internal/engine/validator"
	"go.uber.org/mock/gomock"
)

func TestFactory_StageNames(t *testing.T) {
	current := &domain.Lockfile{
		Pods:    domain.Manifest{"A": "1.0"},
		DevPods: map[string]string{"A": "/src/A"},
	}

	tests := []struct {
		name   string
		config *domain.Config
		want   []string
	}{
		{
			name:   "default mode",
			config: &domain.Config{},
			want:   []string{validator.StageMetadata, validator.StageGraph},
		},
		{
			name:   "manifest mode",
			config: &domain.Config{Mode: domain.ModeManifest, DevPodsEnabled: true},
			want:   []string{validator.StageManifest, validator.StageGraph},
		},
		{
			name:   "dev pods enabled",
			config: &domain.Config{Mode: domain.ModeMetadata, DevPodsEnabled: true},
			want:   []string{validator.StageMetadata, validator.StageDevSource, validator.StageGraph},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := validator.NewFactory(
				mocks.NewMockMetadataStore(ctrl),
				mocks.NewMockSourceHasher(ctrl),
				nil,
			)

			p := f.Build(validator.Snapshot{Config: tt.config, Current: current})
			assert.Equal(t, tt.want, p.StageNames())
		})
	}
}

func TestFactory_NoHasherSkipsDevSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := validator.NewFactory(mocks.NewMockMetadataStore(ctrl), nil, nil)

	p := f.Build(validator.Snapshot{
		Config:  &domain.Config{DevPodsEnabled: true},
		Current: &domain.Lockfile{Pods: domain.Manifest{"A": "1.0"}},
	})
	assert.Equal(t, []string{validator.StageMetadata, validator.StageGraph}, p.StageNames())
}

func TestFactory_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMetadataStore(ctrl)

	// A depends on B, B is outdated, C is independent.
	current := &domain.Lockfile{
		Pods:         domain.Manifest{"A": "1.0", "B": "2.0", "C": "3.0"},
		Dependencies: map[string][]string{"A": {"B"}},
	}
	prebuilt := &domain.Lockfile{
		Pods: domain.Manifest{"A": "1.0", "B": "1.9", "C": "3.0"},
	}

	store.EXPECT().Load(frameworksDir, "A").Return(&domain.ArtifactMetadata{}, nil)
	store.EXPECT().Load(frameworksDir, "C").Return(&domain.ArtifactMetadata{}, nil)

	p := validator.NewFactory(store, nil, nil).Build(validator.Snapshot{
		Config:   &domain.Config{GeneratedFrameworksDir: frameworksDir},
		Current:  current,
		Prebuilt: prebuilt,
	})

	got, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"A": validator.ReasonDependenciesMissed,
		"B": "Outdated: (prebuilt: 1.9) vs (2.0)",
	}, got.Missed)
	assert.Equal(t, []string{"C"}, got.Hit.Sorted())
}

func TestFactory_NoPrebuiltManifest(t *testing.T) {
	p := validator.NewFactory(nil, nil, nil).Build(validator.Snapshot{
		Config: &domain.Config{},
		Current: &domain.Lockfile{
			Pods:         domain.Manifest{"A": "1.0", "B": "1.0"},
			Dependencies: map[string][]string{"A": {"B"}},
		},
	})

	got, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"A": "Not available (1.0)", "B": "Not available (1.0)"}, got.Missed)
	assert.Empty(t, got.Hit)
}
