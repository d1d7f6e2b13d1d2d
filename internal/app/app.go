// Package app implements the application layer for nh.
package app

import (
	"context"

	"go.trai.ch/nh/internal/adapters/fs" //nolint:depguard // Filtering is a pure helper
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
)

// Verbosity toggles debug output.
type Verbosity interface {
	SetVerbose(verbose bool)
}

// Renderers groups the output formats available to commands.
type Renderers struct {
	Text ports.Renderer
	JSON ports.Renderer
}

func (r Renderers) pick(json bool) ports.Renderer {
	if json {
		return r.JSON
	}
	return r.Text
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	classifier   ports.Classifier
	finder       ports.Finder
	fetcher      ports.MetadataFetcher
	updater      ports.Updater
	renderers    Renderers
	verbosity    Verbosity

	configPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	classifier ports.Classifier,
	finder ports.Finder,
	fetcher ports.MetadataFetcher,
	updater ports.Updater,
	renderers Renderers,
	verbosity Verbosity,
) *App {
	return &App{
		configLoader: loader,
		classifier:   classifier,
		finder:       finder,
		fetcher:      fetcher,
		updater:      updater,
		renderers:    renderers,
		verbosity:    verbosity,
	}
}

// GlobalOptions holds settings shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
}

// Configure applies global options before a command runs.
func (a *App) Configure(opts GlobalOptions) {
	a.configPath = opts.ConfigPath
	if a.verbosity != nil {
		a.verbosity.SetVerbose(opts.Verbose)
	}
}

// FindOptions controls package discovery.
type FindOptions struct {
	Filter string
	JSON   bool
}

// Find lists every package definition below root.
func (a *App) Find(ctx context.Context, root string, opts FindOptions) error {
	units, err := a.discover(ctx, root)
	if err != nil {
		return err
	}

	units = fs.Filter(units, opts.Filter)

	return a.renderers.pick(opts.JSON).RenderUnits(units)
}

// Inspect classifies a single path and prints the result.
func (a *App) Inspect(path string, json bool) error {
	unit, err := a.classifier.Classify(path)
	if err != nil {
		return err
	}

	return a.renderers.pick(json).RenderUnits([]domain.PackageUnit{unit})
}

// InfoOptions controls metadata lookups.
type InfoOptions struct {
	// Flake overrides the configured project reference when set.
	Flake string
	JSON  bool
}

// Info looks up and prints the metadata of each named package.
func (a *App) Info(ctx context.Context, names []string, opts InfoOptions) error {
	if len(names) == 0 {
		return domain.ErrNoPackagesSpecified
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	ref := cfg.Flake
	if opts.Flake != "" {
		ref = opts.Flake
	}

	records := a.fetcher.FetchAll(ctx, ref, names)

	return a.renderers.pick(opts.JSON).RenderRecords(records)
}

// UpdateOptions controls flake updates.
type UpdateOptions struct {
	DryRun bool
}

// Update refreshes the lock file of every flake project below root.
// Standalone files are skipped.
func (a *App) Update(ctx context.Context, root string, opts UpdateOptions) error {
	units, err := a.discover(ctx, root)
	if err != nil {
		return err
	}

	for _, unit := range units {
		if !unit.IsFlake() {
			continue
		}
		if err := a.updater.Update(ctx, unit, opts.DryRun); err != nil {
			return zerr.With(zerr.Wrap(err, "update aborted"), "path", unit.Path)
		}
	}

	return nil
}

func (a *App) discover(ctx context.Context, root string) ([]domain.PackageUnit, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	units, err := a.finder.FindAll(ctx, root, cfg.Ignore)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to discover package definitions")
	}
	return units, nil
}

func (a *App) loadConfig() (domain.Config, error) {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}
