package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"vegas-roulette-service/internal/background"
	"vegas-roulette-service/internal/config"
	"vegas-roulette-service/internal/flags"
	"vegas-roulette-service/internal/roulette"
	"vegas-roulette-service/internal/scoring"
	"vegas-roulette-service/internal/server"
	"vegas-roulette-service/internal/state"
	"vegas-roulette-service/internal/telemetry"
	pb "vegas-roulette-service/proto"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	serviceName := cfg.Server.ServiceName
	log.Printf("🚀 Starting %s...", serviceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.Telemetry.Endpoint,
		Metadata:    server.Metadata(),
	})
	if err != nil {
		log.Printf("Failed to initialize OpenTelemetry: %v", err)
	} else {
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error shutting down tracer provider: %v", err)
			}
		}()
	}

	store := state.Connect(cfg.Redis.Addr(), cfg.Redis.Password)
	defer store.Close()

	tasks := background.New(4, 256)
	defer tasks.Close()

	svc := server.New(cfg, server.Deps{
		Resolver: roulette.NewResolver(nil),
		Flags:    flags.New(cfg.Flagd.BaseURL()),
		Store:    store,
		Sink:     scoring.New(cfg.Scoring.URL),
		Tasks:    tasks,
	})

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.TraceContextInterceptor()))
	pb.RegisterRouletteServiceServer(grpcServer, svc)
	reflection.Register(grpcServer)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.HTTPPort,
		Handler: server.NewHealthRouter(serviceName),
	}

	go func() {
		log.Printf("[%s] gRPC server listening on port %s", serviceName, cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()
	go func() {
		log.Printf("[%s] HTTP server listening on port %s", serviceName, cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Printf("[%s] Shutting down...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	grpcServer.GracefulStop()

	log.Printf("[%s] Shutdown complete", serviceName)
}
