package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcmget/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/dcmget/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/dcmget/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/dcmget/internal/adapters/probe"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dcmget/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/dcmget/internal/core/ports"
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
			shell.NodeID,
			probe.NodeID,
			logger.NodeID,
			cas.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ExecutableLocator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReceiptStore](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, locator, log, store), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
