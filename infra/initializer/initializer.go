package initializer

import (
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/infra/repository"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/eventbus"
)

// InitializeDependencies initializes all the application dependencies: the
// process logger, the in-memory client and account stores and the event bus
// with its audit subscriber.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := setupLogger(cfg.Log)
	logger.Info("Initializing dependencies", "env", cfg.Env)

	bus := eventbus.NewSimpleEventBus()
	eventbus.SubscribeAll(bus, eventbus.AuditHandler(logger))

	return &config.Deps{
		ClientRepository:  repository.NewClientRepository(),
		AccountRepository: repository.NewAccountRepository(),
		EventBus:          bus,
		Logger:            logger,
		Config:            cfg,
	}, nil
}
