package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/hackidx/internal/adapters/logger"
	"go.trai.ch/hackidx/internal/core/ports"
)

// NodeID is the unique identifier for the repository resolver Graft node.
const NodeID graft.ID = "adapter.repo_resolver"

// EnvConfigPath overrides the platform default configuration file location.
const EnvConfigPath = "HACKIDX_CONFIG"

func init() {
	graft.Register(graft.Node[ports.RepoResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.RepoResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log).Load(os.Getenv(EnvConfigPath))
		},
	})
}
