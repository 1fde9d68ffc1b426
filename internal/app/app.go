// Package app implements the application layer for bincache.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.trai.ch/bincache/internal/core/domain"
	"go.trai.ch/bincache/internal/core/ports"
	"go.trai.ch/bincache/internal/engine/validator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lockfiles    ports.LockfileLoader
	factory      *validator.Factory
	logger       ports.Logger
	newRunID     func() string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lockfiles ports.LockfileLoader,
	factory *validator.Factory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		lockfiles:    lockfiles,
		factory:      factory,
		logger:       log,
		newRunID:     uuid.NewString,
	}
}

// WithRunID replaces the run identifier generator. Used for testing.
func (a *App) WithRunID(fn func() string) *App {
	a.newRunID = fn
	return a
}

// ValidateOptions configuration for the Validate method.
// Zero values leave the configuration file untouched.
type ValidateOptions struct {
	Cwd            string
	Mode           domain.ValidationMode
	DevPodsEnabled *bool
	IgnoredPods    []string
}

// Validate decides which prebuilt pods can be reused for the project found at opts.Cwd.
func (a *App) Validate(ctx context.Context, opts ValidateOptions) (*domain.Report, error) {
	// 1. Load the configuration
	cwd := opts.Cwd
	if cwd == "" {
		cwd = "."
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)

	// 2. Load both snapshots
	current, prebuilt, err := a.loadLockfiles(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if prebuilt == nil {
		a.logger.Warn(fmt.Sprintf("no prebuilt manifest at %s, every pod is missed", cfg.PrebuiltLockfilePath))
	}

	// 3. Run the pipeline
	pipeline := a.factory.Build(validator.Snapshot{
		Config:   cfg,
		Current:  current,
		Prebuilt: prebuilt,
	})
	result, err := pipeline.Run(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrValidationFailed.Error())
	}

	report := domain.NewReport(a.newRunID(), cfg.Mode, result)
	a.logger.Info(fmt.Sprintf("validated %d pods: %d hit, %d missed", len(current.Pods), len(report.Hit), len(report.Missed)))
	return &report, nil
}

// loadLockfiles reads the current and the prebuilt lockfile concurrently.
// Only the current one is required.
func (a *App) loadLockfiles(ctx context.Context, cfg *domain.Config) (*domain.Lockfile, *domain.Lockfile, error) {
	var current, prebuilt *domain.Lockfile

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		lf, err := a.lockfiles.Load(cfg.LockfilePath)
		if err != nil {
			return err
		}
		if lf == nil {
			return zerr.With(domain.ErrLockfileNotFound, "path", cfg.LockfilePath)
		}
		current = lf
		return nil
	})
	g.Go(func() error {
		lf, err := a.lockfiles.Load(cfg.PrebuiltLockfilePath)
		if err != nil {
			return err
		}
		prebuilt = lf
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, prebuilt, nil
}

func applyOverrides(cfg *domain.Config, opts ValidateOptions) {
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}
	if opts.DevPodsEnabled != nil {
		cfg.DevPodsEnabled = *opts.DevPodsEnabled
	}
	if len(opts.IgnoredPods) > 0 {
		cfg.IgnoredPods = cfg.IgnoredPods.Union(domain.NewModuleSet(opts.IgnoredPods...))
	}
}
