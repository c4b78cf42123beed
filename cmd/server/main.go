package main

import (
	"fmt"
	"log/slog"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/infra/initializer"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/app"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
