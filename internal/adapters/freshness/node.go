package freshness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/internal/adapters/fs"
	"go.trai.ch/views/internal/core/ports"
)

// NodeID is the unique identifier for the freshness tracker Graft node.
const NodeID graft.ID = "adapter.freshness"

func init() {
	graft.Register(graft.Node[ports.FreshnessTracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (ports.FreshnessTracker, error) {
			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracker(fileSystem), nil
		},
	})
}
