// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dcmget/internal/adapters/cas"
	_ "go.trai.ch/dcmget/internal/adapters/config"
	_ "go.trai.ch/dcmget/internal/adapters/logger"
	_ "go.trai.ch/dcmget/internal/adapters/probe"
	_ "go.trai.ch/dcmget/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/dcmget/internal/app"
)
