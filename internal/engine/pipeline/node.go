package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grind/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/grind/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/grind/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/grind/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/grind/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.OracleNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			oracle, err := graft.Dep[ports.RebuildOracle](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(invoker, oracle, log, tracer), nil
		},
	})
}
