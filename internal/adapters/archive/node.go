package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hackidx/internal/core/ports"
)

// NodeID is the unique identifier for the index walker Graft node.
const NodeID graft.ID = "adapter.index_walker"

func init() {
	graft.Register(graft.Node[ports.IndexWalker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexWalker, error) {
			return NewWalker(), nil
		},
	})
}
