package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rpn/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rpn/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[ports.SequenceFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.SequenceFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return func(settings domain.Settings) ports.Sequence {
				return NewCache(settings, log, tracer)
			}, nil
		},
	})
}
