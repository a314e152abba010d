package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rpn/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rpn/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rpn/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rpn/internal/core/ports"
	"go.trai.ch/rpn/internal/engine/generator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			generator.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.SequenceFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, factory), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(a, log, tracer), nil
}
