package nix

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/nh/internal/adapters/logger"
	"go.trai.ch/nh/internal/adapters/shell"
	"go.trai.ch/nh/internal/adapters/telemetry/progrock"
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
)

const (
	EvaluatorNodeID graft.ID = "adapter.nix.evaluator"
	FetcherNodeID   graft.ID = "adapter.nix.fetcher"
	UpdaterNodeID   graft.ID = "adapter.nix.updater"
)

func init() {
	// Evaluator Node
	graft.Register(graft.Node[ports.Evaluator]{
		ID:        EvaluatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.Evaluator, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(domain.DefaultNixBinary, log, telemetry), nil
		},
	})

	// Metadata Fetcher Node
	graft.Register(graft.Node[ports.MetadataFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EvaluatorNodeID},
		Run: func(ctx context.Context) (ports.MetadataFetcher, error) {
			evaluator, err := graft.Dep[ports.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(evaluator), nil
		},
	})

	// Updater Node
	graft.Register(graft.Node[ports.Updater]{
		ID:        UpdaterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Updater, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewUpdater(domain.DefaultNixBinary, executor, os.Stdout), nil
		},
	})
}
