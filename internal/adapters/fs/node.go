package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/nh/internal/adapters/logger"
	"go.trai.ch/nh/internal/core/ports"
)

const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	ClassifierNodeID graft.ID = "adapter.fs.classifier"
	FinderNodeID     graft.ID = "adapter.fs.finder"
)

func init() {
	// Walker Node (concrete implementation needed by Finder)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Classifier Node
	graft.Register(graft.Node[ports.Classifier]{
		ID:        ClassifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Classifier, error) {
			return NewClassifier(), nil
		},
	})

	// Finder Node
	graft.Register(graft.Node[ports.Finder]{
		ID:        FinderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClassifierNodeID, WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Finder, error) {
			classifier, err := graft.Dep[ports.Classifier](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFinder(classifier, walker, log, os.Stdout), nil
		},
	})
}
