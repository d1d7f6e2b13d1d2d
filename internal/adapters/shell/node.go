package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nh/internal/adapters/logger"
	"go.trai.ch/nh/internal/adapters/telemetry/progrock"
	"go.trai.ch/nh/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log, telemetry), nil
		},
	})
}
