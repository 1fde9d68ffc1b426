package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports/mocks"
	"go.trai.ch/bincache/internal/engine/validator"
	"go.uber.org/mock/gomock"
)

func missStage(id, reason string) validator.Func {
	return func(_ context.Context, acc domain.ValidationResult) (domain.ValidationResult, error) {
		return domain.Merge(acc, domain.NewValidationResult(map[string]string{id: reason}, nil)), nil
	}
}

func TestPipeline_RunsStagesInOrder(t *testing.T) {
	var order []string
	stage := func(name string) validator.Stage {
		return validator.Stage{
			Name: name,
			Validator: validator.Func(func(_ context.Context, acc domain.ValidationResult) (domain.ValidationResult, error) {
				order = append(order, name)
				return acc, nil
			}),
		}
	}

	p := validator.NewPipeline(nil, stage("first"), stage("second"), stage("third"))

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, order, p.StageNames())
}

func TestPipeline_ThreadsResult(t *testing.T) {
	p := validator.NewPipeline(nil,
		validator.Stage{Name: "a", Validator: missStage("A", "first")},
		validator.Stage{Name: "b", Validator: missStage("A", "second")},
		validator.Stage{Name: "c", Validator: missStage("B", "third")},
	)

	got, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "first", "B": "third"}, got.Missed)
}

func TestPipeline_EmptyRun(t *testing.T) {
	got, err := validator.NewPipeline(nil).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Missed)
	assert.Empty(t, got.Hit)
}

func TestPipeline_MissingValidator(t *testing.T) {
	called := false
	p := validator.NewPipeline(nil,
		validator.Stage{Name: "abstract"},
		validator.Stage{Name: "after", Validator: validator.Func(func(_ context.Context, acc domain.ValidationResult) (domain.ValidationResult, error) {
			called = true
			return acc, nil
		})},
	)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrValidatorNotImplemented.Error())
	assert.False(t, called)
}

func TestPipeline_StageErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	p := validator.NewPipeline(nil,
		validator.Stage{Name: "broken", Validator: validator.Func(func(context.Context, domain.ValidationResult) (domain.ValidationResult, error) {
			return domain.ValidationResult{}, boom
		})},
	)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, `validation stage failed "broken"`)
}

func TestPipeline_RecordsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	telemetry := mocks.NewMockTelemetry(ctrl)
	changing := mocks.NewMockVertex(ctrl)
	unchanged := mocks.NewMockVertex(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		telemetry.EXPECT().Record(ctx, "miss").Return(ctx, changing),
		changing.EXPECT().Log(domain.LogLevelInfo, "0 hit, 1 missed"),
		changing.EXPECT().Complete(nil),
		telemetry.EXPECT().Record(ctx, "noop").Return(ctx, unchanged),
		unchanged.EXPECT().Log(domain.LogLevelInfo, "0 hit, 1 missed"),
		unchanged.EXPECT().Cached(),
		unchanged.EXPECT().Complete(nil),
	)

	p := validator.NewPipeline(telemetry,
		validator.Stage{Name: "miss", Validator: missStage("A", "x")},
		validator.Stage{Name: "noop", Validator: missStage("A", "y")},
	)

	_, err := p.Run(ctx)
	require.NoError(t, err)
}

func TestPipeline_RecordsStageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	ctx := context.Background()
	boom := errors.New("boom")

	telemetry.EXPECT().Record(ctx, "broken").Return(ctx, vertex)
	vertex.EXPECT().Complete(boom)

	p := validator.NewPipeline(telemetry,
		validator.Stage{Name: "broken", Validator: validator.Func(func(context.Context, domain.ValidationResult) (domain.ValidationResult, error) {
			return domain.ValidationResult{}, boom
		})},
	)

	_, err := p.Run(ctx)
	require.Error(t, err)
}
