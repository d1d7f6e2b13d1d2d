package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nh/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nh/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/nh/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nh/internal/adapters/nix"                //nolint:depguard // Wired in app layer
	"go.trai.ch/nh/internal/adapters/render"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nh/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nh/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ClassifierNodeID,
			fs.FinderNodeID,
			nix.FetcherNodeID,
			nix.UpdaterNodeID,
			render.TextNodeID,
			render.JSONNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := graft.Dep[ports.Classifier](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.Finder](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.MetadataFetcher](ctx)
	if err != nil {
		return nil, err
	}

	updater, err := graft.Dep[ports.Updater](ctx)
	if err != nil {
		return nil, err
	}

	text, err := graft.Dep[*render.Text](ctx)
	if err != nil {
		return nil, err
	}

	json, err := graft.Dep[*render.JSON](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, classifier, finder, fetcher, updater, Renderers{Text: text, JSON: json}, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
