package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beer-battle/internal/adapter"
	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/service"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/workers"
)

type App struct {
	cfg *config.ClientConfig

	storages  *store.ClientStorages
	scheduler *workers.Scheduler
	services  *service.ClientServices

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local cache and connects the client services to the
// remote store of cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPDocumentStore(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote store: %w", err)
	}

	app, err := newApp(storages, remote, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(storages *store.ClientStorages, remote adapter.DocumentStore, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	scheduler := workers.NewScheduler(cfg.Workers, remote, logger)

	services, err := service.NewClientServices(storages, remote, scheduler, cfg, logger)
	if err != nil {
		scheduler.Shutdown()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		cfg:       cfg,
		storages:  storages,
		scheduler: scheduler,
		services:  services,
		logger:    logger,
	}, nil
}

// Services returns the client services of the app.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Scheduler returns the background job scheduler of the app.
func (a *App) Scheduler() *workers.Scheduler {
	return a.scheduler
}

// Run makes ownerID the active owner, which registers its periodic syncs
// and enqueues an immediate one, then runs the scheduler and the remote
// listener until ctx is cancelled.
func (a *App) Run(ctx context.Context, ownerID string) error {
	if err := a.services.SessionService.SetActiveOwner(ctx, ownerID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer a.services.SessionService.Clear()

	a.logger.Info().Str("owner_id", ownerID).Msg("client session started")

	return workers.NewWorkers(a.scheduler, a.services.Listener).Run(ctx)
}

func (a *App) Close() error {
	a.scheduler.Shutdown()
	a.services.Close()

	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}
