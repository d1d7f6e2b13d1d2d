// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nh/internal/adapters/config"
	_ "go.trai.ch/nh/internal/adapters/fs"
	_ "go.trai.ch/nh/internal/adapters/logger"
	_ "go.trai.ch/nh/internal/adapters/nix"
	_ "go.trai.ch/nh/internal/adapters/render"
	_ "go.trai.ch/nh/internal/adapters/shell"
	_ "go.trai.ch/nh/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/nh/internal/app"
)
