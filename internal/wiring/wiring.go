// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bincache/internal/adapters/config"
	_ "go.trai.ch/bincache/internal/adapters/fs"
	_ "go.trai.ch/bincache/internal/adapters/lockfile"
	_ "go.trai.ch/bincache/internal/adapters/logger"
	_ "go.trai.ch/bincache/internal/adapters/metadata"
	_ "go.trai.ch/bincache/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/bincache/internal/app"
	_ "go.trai.ch/bincache/internal/engine/validator"
)
