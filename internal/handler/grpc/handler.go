package grpc

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NotesServiceName is the service name reported by the health endpoint next
// to the overall ("") server status.
const NotesServiceName = "gonotekeeper.Notes"

// Handler is the root gRPC transport handler.
//
// The notes API itself is served over HTTP; the gRPC transport exposes the
// standard grpc.health.v1.Health service and server reflection so that
// orchestrators and grpcurl can probe the process.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health server starts in the
// NOT_SERVING state until [Handler.Register] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the health and reflection services to server and marks
// the process as SERVING.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every status to NOT_SERVING so that watchers drain before
// the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
