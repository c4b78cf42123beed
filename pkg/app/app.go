// Package app assembles the services shared by the command line and HTTP
// front ends.
package app

import (
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/service/ledger"
)

type App struct {
	Deps          *config.Deps
	Config        *config.App
	LedgerService *ledger.Service
}

func New(deps *config.Deps, cfg *config.App) (*App, error) {
	if cfg == nil {
		cfg = deps.Config
	}
	deps.Config = cfg
	svc, err := ledger.NewService(*deps)
	if err != nil {
		return nil, err
	}
	return &App{
		Deps:          deps,
		Config:        cfg,
		LedgerService: svc,
	}, nil
}
