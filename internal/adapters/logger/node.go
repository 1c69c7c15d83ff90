package logger

import (
	"context"
	"os"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// levelEnv sets the level before settings are loaded, so that settings loading itself can be traced.
const levelEnv = "PDB_LOG_LEVEL"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := New()
			if level := os.Getenv(levelEnv); level != "" {
				// An invalid value is reported once settings are applied.
				_ = l.SetLevel(level)
			}
			return l, nil
		},
	})
}
