package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grind/internal/core/ports"
)

// OracleNodeID is the unique identifier for the staleness oracle Graft node.
const OracleNodeID graft.ID = "adapter.fs.oracle"

func init() {
	graft.Register(graft.Node[ports.RebuildOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RebuildOracle, error) {
			return NewOracle(), nil
		},
	})
}
