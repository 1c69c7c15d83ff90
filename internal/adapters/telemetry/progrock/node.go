package progrock

import (
	"context"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/logger"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the load progress recorder node.
const NodeID graft.ID = "adapter.telemetry.progrock"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
