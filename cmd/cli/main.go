package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/infra/initializer"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/app"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if !interactive {
		color.NoColor = true
	}
	return newMenu(a.LedgerService, os.Stdin, os.Stdout, interactive).run(ctx)
}
