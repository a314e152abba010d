// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rpn/internal/adapters/config"
	_ "go.trai.ch/rpn/internal/adapters/logger"
	_ "go.trai.ch/rpn/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/rpn/internal/app"
	_ "go.trai.ch/rpn/internal/engine/generator"
)
