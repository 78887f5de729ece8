package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	toolkitv1alpha1 "github.com/KirkDiggler/dnd-ai-toolkit/internal/handlers/toolkit/v1alpha1"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/telemetry"
)

const serviceName = "dnd-ai-toolkit"

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the toolkit gRPC server with storage, generation and translation wired from the environment.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, cfg, err := buildApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.Env.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("failed to flush traces", "error", err)
		}
	}()

	handler, err := toolkitv1alpha1.NewHandler(&toolkitv1alpha1.HandlerConfig{
		Storage:     a.Storage,
		Generation:  a.Generation,
		Translation: a.Translation,
		Characters:  a.Characters,
		Catalog:     a.Catalog,
	})
	if err != nil {
		return fmt.Errorf("failed to create toolkit handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	toolkitv1alpha1.RegisterToolkitServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(toolkitv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", grpcPort,
			"storage", cfg.Env.StorageBackend,
			"text_provider", cfg.Settings.TextProvider)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the middleware logger. The middleware
// levels share slog's numeric values.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
