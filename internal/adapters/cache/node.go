package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hackidx/internal/adapters/config"
	"go.trai.ch/hackidx/internal/adapters/flock"
	"go.trai.ch/hackidx/internal/adapters/hackage"
	"go.trai.ch/hackidx/internal/adapters/logger"
	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports"
)

// NodeID is the unique identifier for the metadata cache Graft node.
const NodeID graft.ID = "adapter.metadata_cache"

func init() {
	graft.Register(graft.Node[ports.MetadataCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			hackage.NodeID,
			flock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.MetadataCache, error) {
			resolver, err := graft.Dep[ports.RepoResolver](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.MetadataBuilder](ctx)
			if err != nil {
				return nil, err
			}
			locker, err := graft.Dep[ports.Locker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			dir, err := domain.DefaultCacheDir()
			if err != nil {
				return nil, err
			}
			return NewManager(dir, resolver, builder, locker, log), nil
		},
	})
}
