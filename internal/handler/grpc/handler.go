// Package grpc exposes the document store health over gRPC.
//
// The standard grpc.health.v1 service reports SERVING while the storage
// answers pings. Load balancers and the client probe it instead of the HTTP
// health route when gRPC is enabled.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/service"
)

// DocumentStoreService is the health service name of the document store.
const DocumentStoreService = "beerbattle.DocumentStore"

const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	probeInterval time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services:      services,
		health:        health.NewServer(),
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
	// до первой проверки хранилище считается недоступным
	h.setServing(false)

	return h
}

// Register adds the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// WatchHealth probes the storage every probe interval and publishes the
// result until ctx is done. On return every service reports NOT_SERVING.
func (h *Handler) WatchHealth(ctx context.Context) {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	h.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Handler) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.probeInterval)
	defer cancel()

	err := h.services.HealthService.Ping(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.probe").Msg("document store is not serving")
	}
	h.setServing(err == nil)
}

func (h *Handler) setServing(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(DocumentStoreService, status)
}
