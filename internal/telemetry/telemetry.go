// Package telemetry wires OpenTelemetry tracing: an OTLP gRPC exporter,
// a resource describing the service, and W3C trace context propagation.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config describes the traced service. Metadata carries the service's
// descriptive attributes (version, gameType, rtp and so on) which become
// game.* resource attributes.
type Config struct {
	ServiceName string
	Endpoint    string
	Metadata    map[string]string
}

// Init installs a global tracer provider exporting to the configured
// OTLP gRPC endpoint over an insecure connection. The caller owns the
// returned provider and should Shutdown it on exit.
func Init(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "localhost:4317"
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceNamespace(envOr("SERVICE_NAMESPACE", "vegas-casino")),
		semconv.ServiceVersion(lookup("SERVICE_VERSION", cfg.Metadata, "version", "2.1.0")),
		semconv.ServiceInstanceID(envOr("SERVICE_INSTANCE_ID", fmt.Sprintf("%s-%d", cfg.ServiceName, os.Getpid()))),
		semconv.DeploymentEnvironment(envOr("DEPLOYMENT_ENVIRONMENT", "production")),
		attribute.String("game.category", lookup("GAME_CATEGORY", cfg.Metadata, "gameCategory", "unknown")),
		attribute.String("game.type", lookup("GAME_TYPE", cfg.Metadata, "gameType", "unknown")),
		attribute.String("game.complexity", lookup("GAME_COMPLEXITY", cfg.Metadata, "complexity", "medium")),
		attribute.String("game.rtp", lookup("GAME_RTP", cfg.Metadata, "rtp", "variable")),
		attribute.String("game.max_payout", lookup("GAME_MAX_PAYOUT", cfg.Metadata, "maxPayout", "1x")),
		attribute.String("game.owner", lookup("GAME_OWNER", cfg.Metadata, "owner", "Vegas-Casino-Team")),
		attribute.String("game.technology", lookup("GAME_TECHNOLOGY", cfg.Metadata, "technology", "Go")),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// lookup resolves an attribute the way the rest of the casino fleet does:
// environment variable first, then service metadata, then the fallback.
func lookup(env string, metadata map[string]string, key, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	if v, ok := metadata[key]; ok && v != "" {
		return v
	}
	return fallback
}
