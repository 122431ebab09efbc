package server

import (
	"context"

	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// metadataTextMapCarrier adapts gRPC metadata to the OpenTelemetry text
// map carrier so trace context can be read from inbound call metadata.
type metadataTextMapCarrier metadata.MD

func (m metadataTextMapCarrier) Get(key string) string {
	values := metadata.MD(m).Get(key)
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

func (m metadataTextMapCarrier) Set(key, value string) {
	metadata.MD(m).Set(key, value)
}

func (m metadataTextMapCarrier) Keys() []string {
	keys := make([]string, 0, len(metadata.MD(m)))
	for k := range metadata.MD(m) {
		keys = append(keys, k)
	}
	return keys
}

// TraceContextInterceptor extracts W3C trace context from inbound gRPC
// metadata so server spans join the caller's trace.
func TraceContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			ctx = otel.GetTextMapPropagator().Extract(ctx, metadataTextMapCarrier(md))
		}
		return handler(ctx, req)
	}
}
