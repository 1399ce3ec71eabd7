// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hackidx/internal/adapters/archive"
	_ "go.trai.ch/hackidx/internal/adapters/cache"
	_ "go.trai.ch/hackidx/internal/adapters/config"
	_ "go.trai.ch/hackidx/internal/adapters/flock"
	_ "go.trai.ch/hackidx/internal/adapters/hackage"
	_ "go.trai.ch/hackidx/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/hackidx/internal/app"
)
