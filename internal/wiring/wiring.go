// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/screener/internal/adapters/api"
	_ "go.trai.ch/screener/internal/adapters/config"
	_ "go.trai.ch/screener/internal/adapters/exportfile"
	_ "go.trai.ch/screener/internal/adapters/logger"
	_ "go.trai.ch/screener/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/screener/internal/app"
)
