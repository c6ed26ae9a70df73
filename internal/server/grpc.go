package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/beer-battle/internal/config"
	myGRPC "github.com/MKhiriev/beer-battle/internal/handler/grpc"
	"github.com/MKhiriev/beer-battle/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	addr            string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	options := []grpc.ServerOption{grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor)}
	if cfg.RequestTimeout > 0 {
		options = append(options, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	server := grpc.NewServer(options...)
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		addr:    cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.addr)
	if err != nil {
		return err
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) address() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.serve").Msg("gRPC server stopped")
		return err
	}
	return nil
}

// shutdown waits for in-flight calls until ctx expires, then stops hard.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
