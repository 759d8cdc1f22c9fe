package grpc

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/suretrust/underwriting-service/pkg/auth"
)

// Server wraps the gRPC server and its listener.
type Server struct {
	server   *grpclib.Server
	listener net.Listener
	logger   *slog.Logger
}

// NewServer creates a gRPC server with authentication enabled. Health check
// methods bypass the auth interceptor so load balancers can probe freely.
func NewServer(
	address string,
	handler *UnderwritingHandler,
	jwtService *auth.JWTService,
	logger *slog.Logger,
) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	skipMethods := []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
	}

	server := grpclib.NewServer(
		grpclib.UnaryInterceptor(auth.UnaryAuthInterceptor(jwtService, skipMethods)),
	)

	RegisterUnderwritingServiceServer(server, handler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(server)
	}

	return &Server{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

// Start begins serving. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("grpc server listening", slog.String("address", s.listener.Addr().String()))
	return s.server.Serve(s.listener)
}

// Stop gracefully drains in-flight requests and shuts down.
func (s *Server) Stop() {
	s.logger.Info("stopping grpc server")
	s.server.GracefulStop()
}
