package config

import (
	"log/slog"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/eventbus"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	ClientRepository  repository.ClientRepository
	AccountRepository repository.AccountRepository
	EventBus          eventbus.Bus
	Logger            *slog.Logger
	Config            *App
}
