package handler

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ServiceName = "gaming-store-service"

// GrpcHandler serves grpc.health.v1 for the whole server and for ServiceName.
// Both report NOT_SERVING until SetServing(true).
type GrpcHandler struct {
	health *health.Server
}

func CreateGRPCHandler() *GrpcHandler {
	h := &GrpcHandler{health: health.NewServer()}
	h.SetServing(false)

	return h
}

func (h *GrpcHandler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown flips every status to NOT_SERVING and ignores later updates.
func (h *GrpcHandler) Shutdown() {
	h.health.Shutdown()
}

func CreateGRPCServer(h *GrpcHandler) *grpc.Server {
	server := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)

	return server
}
