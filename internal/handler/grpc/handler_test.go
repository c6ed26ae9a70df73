package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/mock"
	"github.com/MKhiriev/beer-battle/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockHealthService) {
	t.Helper()

	health := mock.NewMockHealthService(gomock.NewController(t))
	h := NewHandler(&service.Services{HealthService: health}, logger.Nop())
	h.probeInterval = 10 * time.Millisecond
	return h, health
}

// dialHealth поднимает gRPC-сервер на bufconn и возвращает клиент health.
func dialHealth(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(server)

	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, serviceName string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_NotServingBeforeFirstProbe(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dialHealth(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DocumentStoreService))
}

func TestWatchHealth_FollowsStoragePing(t *testing.T) {
	h, health := newTestHandler(t)
	client := dialHealth(t, h)

	health.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.WatchHealth(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return check(t, client, DocumentStoreService) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	// после остановки сервис больше не обслуживает запросы
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DocumentStoreService))
}

func TestProbe_StorageDown(t *testing.T) {
	h, health := newTestHandler(t)
	client := dialHealth(t, h)

	health.EXPECT().Ping(gomock.Any()).Return(nil)
	h.probe(context.Background())
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))

	health.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	h.probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestCheck_UnknownService(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dialHealth(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	assert.Error(t, err)
}

func TestUnaryLoggingInterceptor_TraceIDFromMetadata(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t)
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	client := dialHealth(t, h)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDMetadataKey, "trace-42")
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}
