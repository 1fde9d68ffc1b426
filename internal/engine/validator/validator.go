// Package validator implements the prebuilt cache validation engine.
package validator

import (
	"context"
	"fmt"

	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Validator is a pipeline stage.
// It consumes the result accumulated by the previous stages and returns a new one.
type Validator interface {
	Validate(ctx context.Context, accumulated domain.ValidationResult) (domain.ValidationResult, error)
}

// Func adapts a function to the Validator interface.
type Func func(ctx context.Context, accumulated domain.ValidationResult) (domain.ValidationResult, error)

// Validate calls f.
func (f Func) Validate(ctx context.Context, accumulated domain.ValidationResult) (domain.ValidationResult, error) {
	return f(ctx, accumulated)
}

// Stage is a named validator in a pipeline.
type Stage struct {
	Name      string
	Validator Validator
}

// Pipeline applies its stages in order, threading the result through each.
type Pipeline struct {
	stages    []Stage
	telemetry ports.Telemetry
}

// NewPipeline creates a pipeline. A nil telemetry disables recording.
func NewPipeline(telemetry ports.Telemetry, stages ...Stage) *Pipeline {
	return &Pipeline{
		stages:    stages,
		telemetry: telemetry,
	}
}

// StageNames returns the names of the stages in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run applies every stage to an initially empty result.
// A stage without a validator aborts the run with ErrValidatorNotImplemented.
func (p *Pipeline) Run(ctx context.Context) (domain.ValidationResult, error) {
	result := domain.EmptyResult()

	for _, stage := range p.stages {
		if stage.Validator == nil {
			return domain.ValidationResult{}, zerr.With(domain.ErrValidatorNotImplemented, "stage", stage.Name)
		}

		stageCtx, vertex := p.record(ctx, stage.Name)

		next, err := stage.Validator.Validate(stageCtx, result)
		if err != nil {
			vertex.Complete(err)
			return domain.ValidationResult{}, zerr.With(zerr.Wrap(err, fmt.Sprintf("%s %q", domain.ErrStageFailed.Error(), stage.Name)), "stage", stage.Name)
		}

		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d hit, %d missed", len(next.Hit), len(next.Missed)))
		if sameVerdicts(result, next) {
			vertex.Cached()
		}
		vertex.Complete(nil)

		result = next
	}

	return result, nil
}

func (p *Pipeline) record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	if p.telemetry == nil {
		return ctx, nopVertex{}
	}
	return p.telemetry.Record(ctx, name)
}

func sameVerdicts(a, b domain.ValidationResult) bool {
	if len(a.Missed) != len(b.Missed) || len(a.Hit) != len(b.Hit) {
		return false
	}
	for id, reason := range a.Missed {
		if other, ok := b.Missed[id]; !ok || other != reason {
			return false
		}
	}
	for id := range a.Hit {
		if !b.Hit.Has(id) {
			return false
		}
	}
	return true
}

type nopVertex struct{}

func (nopVertex) Log(domain.LogLevel, string) {}
func (nopVertex) Cached()                     {}
func (nopVertex) Complete(error)              {}
