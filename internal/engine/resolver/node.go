package resolver

import (
	"context"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/msbuild"            //nolint:depguard // Wired in engine wiring
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/sln"                //nolint:depguard // Wired in engine wiring
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sln.NodeID,
			msbuild.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			parser, err := graft.Dep[ports.SolutionParser](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ProjectLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(parser, loader, log, telemetry), nil
		},
	})
}
