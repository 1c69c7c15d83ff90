// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/config"
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/logger"
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/msbuild"
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/sln"
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/app"
	_ "github.com/5l1v3r1/ProjectDependencyBrowser/internal/engine/resolver"
)
