package hackage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hackidx/internal/adapters/archive"
	"go.trai.ch/hackidx/internal/adapters/logger"
	"go.trai.ch/hackidx/internal/core/ports"
)

// NodeID is the unique identifier for the metadata builder Graft node.
const NodeID graft.ID = "adapter.metadata_builder"

func init() {
	graft.Register(graft.Node[ports.MetadataBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			archive.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.MetadataBuilder, error) {
			walker, err := graft.Dep[ports.IndexWalker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(walker, log), nil
		},
	})
}
