package config

import (
	"context"
	"os"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/logger"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			wd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine working directory")
			}

			return &Loader{Logger: log, Dir: wd}, nil
		},
	})
}
