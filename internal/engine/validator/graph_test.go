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

func TestGraphValidator_Propagates(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependency("C", "B")
	g.AddDependency("D", "C")
	g.AddModule("A")

	v := validator.NewGraphValidator(validator.GraphOptions{
		Graph:             g,
		PrebuiltAvailable: true,
	})
	accumulated := domain.NewValidationResult(map[string]string{"B": "x"}, domain.NewModuleSet("A"))

	got, err := v.Validate(context.Background(), accumulated)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"B": "x",
		"C": validator.ReasonDependenciesMissed,
		"D": validator.ReasonDependenciesMissed,
	}, got.Missed)
	assert.Equal(t, []string{"A"}, got.Hit.Sorted())
}

func TestGraphValidator_PropagatedMissOverridesHit(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependency("C", "B")

	v := validator.NewGraphValidator(validator.GraphOptions{Graph: g, PrebuiltAvailable: true})
	accumulated := domain.NewValidationResult(map[string]string{"B": "x"}, domain.NewModuleSet("C"))

	got, err := v.Validate(context.Background(), accumulated)
	require.NoError(t, err)

	assert.Equal(t, validator.ReasonDependenciesMissed, got.Missed["C"])
	assert.Empty(t, got.Hit)
}

func TestGraphValidator_PartialHitSuppression(t *testing.T) {
	ctrl := gomock.NewController(t)
	graph := mocks.NewMockDependencyGraph(ctrl)
	graph.EXPECT().ClientsOf(gomock.Any()).Times(0)

	v := validator.NewGraphValidator(validator.GraphOptions{Graph: graph, PrebuiltAvailable: true})
	accumulated := domain.NewValidationResult(
		map[string]string{"P/Sub2": "x"},
		domain.NewModuleSet("P/Sub1"),
	)

	got, err := v.Validate(context.Background(), accumulated)
	require.NoError(t, err)
	assert.Equal(t, accumulated, got)
}

func TestGraphValidator_RootHitSuppression(t *testing.T) {
	ctrl := gomock.NewController(t)
	graph := mocks.NewMockDependencyGraph(ctrl)
	graph.EXPECT().ClientsOf([]string{"Q"}).Return([]string{"R"})

	v := validator.NewGraphValidator(validator.GraphOptions{Graph: graph, PrebuiltAvailable: true})
	accumulated := domain.NewValidationResult(
		map[string]string{"P/Sub": "x", "Q/Sub": "y", "Q": "z"},
		domain.NewModuleSet("P"),
	)

	got, err := v.Validate(context.Background(), accumulated)
	require.NoError(t, err)
	assert.Equal(t, validator.ReasonDependenciesMissed, got.Missed["R"])
	assert.Len(t, got.Missed, 4)
}

func TestGraphValidator_DevPodProtection(t *testing.T) {
	// B (dev) and E are missed. C (dev) and D depend on both, A depends on E only.
	g := domain.NewDependencyGraph()
	g.AddDependency("A", "E")
	g.AddDependency("C", "E")
	g.AddDependency("D", "E")
	g.AddDependency("C", "B")
	g.AddDependency("D", "B")

	accumulated := domain.NewValidationResult(map[string]string{"B": "x", "E": "y"}, nil)

	t.Run("dev pods disabled", func(t *testing.T) {
		v := validator.NewGraphValidator(validator.GraphOptions{
			Graph:             g,
			DevPods:           domain.NewModuleSet("B", "C"),
			PrebuiltAvailable: true,
		})

		got, err := v.Validate(context.Background(), accumulated)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"B": "x",
			"E": "y",
			"A": validator.ReasonDependenciesMissed,
			"D": validator.ReasonDependenciesMissed,
		}, got.Missed)
	})

	t.Run("dev pods enabled", func(t *testing.T) {
		v := validator.NewGraphValidator(validator.GraphOptions{
			Graph:             g,
			DevPods:           domain.NewModuleSet("B", "C"),
			DevPodsEnabled:    true,
			PrebuiltAvailable: true,
		})

		got, err := v.Validate(context.Background(), accumulated)
		require.NoError(t, err)

		assert.Equal(t, validator.ReasonDependenciesMissed, got.Missed["C"])
	})
}

func TestGraphValidator_DevPodMissNeverPropagates(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependency("C", "B")

	for _, enabled := range []bool{false, true} {
		v := validator.NewGraphValidator(validator.GraphOptions{
			Graph:             g,
			DevPods:           domain.NewModuleSet("B"),
			DevPodsEnabled:    enabled,
			PrebuiltAvailable: true,
		})
		accumulated := domain.NewValidationResult(map[string]string{"B/Core": "x"}, nil)

		got, err := v.Validate(context.Background(), accumulated)
		require.NoError(t, err)
		assert.False(t, got.IsMissed("C"), "dev pods enabled=%v", enabled)
	}
}

func TestGraphValidator_IgnoredPodsDoNotPropagate(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependency("C", "B")
	g.AddDependency("D", "A")

	v := validator.NewGraphValidator(validator.GraphOptions{
		Graph:             g,
		Ignored:           domain.NewModuleSet("B"),
		PrebuiltAvailable: true,
	})
	accumulated := domain.NewValidationResult(map[string]string{"A": "x", "B": "y"}, nil)

	got, err := v.Validate(context.Background(), accumulated)
	require.NoError(t, err)

	assert.Equal(t, "y", got.Missed["B"], "ignored pods keep their own verdict")
	assert.False(t, got.IsMissed("C"))
	assert.True(t, got.IsMissed("D"))
}

func TestGraphValidator_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	graph := mocks.NewMockDependencyGraph(ctrl)
	graph.EXPECT().ClientsOf(gomock.Any()).Times(0)

	accumulated := domain.NewValidationResult(map[string]string{"B": "x"}, nil)

	tests := []struct {
		name string
		opts validator.GraphOptions
	}{
		{
			name: "no prebuilt manifest",
			opts: validator.GraphOptions{Graph: graph},
		},
		{
			name: "library evolution",
			opts: validator.GraphOptions{
				Graph:                     graph,
				PrebuiltAvailable:         true,
				LibraryEvolutionSupported: func() bool { return true },
			},
		},
		{
			name: "no graph",
			opts: validator.GraphOptions{PrebuiltAvailable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.NewGraphValidator(tt.opts).Validate(context.Background(), accumulated)
			require.NoError(t, err)
			assert.Equal(t, accumulated, got)
		})
	}
}
