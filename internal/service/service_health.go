package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beer-battle/internal/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	storage pinger

	logger *logger.Logger
}

func NewHealthService(storage pinger, logger *logger.Logger) HealthService {
	return &healthService{storage: storage, logger: logger}
}

func (h *healthService) Ping(ctx context.Context) error {
	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "healthService.Ping").Msg("storage is unavailable")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
