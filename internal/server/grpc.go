package server

import (
	"net"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-note-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-note-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	g.serve(listener)
}

func (g *grpcServer) serve(listener net.Listener) {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
