package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-poster-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/rpc"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	return newGRPCServerOnListener(handler, listener, cfg, logger), nil
}

func newGRPCServerOnListener(handler *myGRPC.Handler, listener net.Listener, cfg config.Server, logger *logger.Logger) *grpcServer {
	opts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(handler.Interceptors()...)}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	srv := grpc.NewServer(opts...)
	rpc.RegisterPosterAppServer(srv, handler)

	return &grpcServer{
		server:          srv,
		gRPCNetListener: listener,
		logger:          logger,
	}
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
