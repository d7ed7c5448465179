package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcmget/internal/core/ports"
)

// NodeID is the unique identifier for the executable locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.ExecutableLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExecutableLocator, error) {
			return NewLocator(), nil
		},
	})
}
