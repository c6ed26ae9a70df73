// Package service holds the business logic of both BeerBattle binaries.
//
// The client services (ClientServices) own the local cache writes, mirror
// them to the remote store, reconcile the cache with remote snapshots and
// schedule background syncs. The server services (Services) validate and
// store remote documents.
package service

import (
	"fmt"

	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/models"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	documents := NewDocumentValidationService().Wrap(NewDocumentService(storages.DocumentRepository, logger))

	return &Services{
		DocumentService: documents,
		AppInfoService:  appInfo,
		HealthService:   NewHealthService(storages, logger),
	}, nil
}
