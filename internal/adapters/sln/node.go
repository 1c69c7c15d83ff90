package sln

import (
	"context"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/logger"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the solution parser Graft node.
const NodeID graft.ID = "adapter.sln_parser"

func init() {
	graft.Register(graft.Node[ports.SolutionParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SolutionParser, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(log), nil
		},
	})
}
