package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/ordem-api/internal/handlers/rules/v1alpha1"
	"github.com/KirkDiggler/ordem-api/internal/observe"
	"github.com/KirkDiggler/ordem-api/internal/orchestrators/rules"
	"github.com/KirkDiggler/ordem-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/ordem-api/internal/redis"
	characterrepo "github.com/KirkDiggler/ordem-api/internal/repositories/character"
	ritualrepo "github.com/KirkDiggler/ordem-api/internal/repositories/ritual"
)

var (
	grpcPort    int
	metricsPort int
	redisAddr   string
	ritualsFile string
	logLevel    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Ordem rules gRPC server. Settings come from ORDEM_* environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", 9090, "Prometheus metrics port, 0 disables")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address, comma separated for a cluster")
	serverCmd.Flags().StringVar(&ritualsFile, "rituals", "", "Ritual catalog YAML file, empty uses the built-in catalog")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	provider, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "ordem-api"})
	if err != nil {
		return fmt.Errorf("failed to init metrics: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics provider shutdown failed", "error", err)
		}
	}()

	metrics, err := observe.NewMetrics(provider.MeterProvider())
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	redisClient, err := redisclient.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // closing on exit
	}()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	ritualRepo, err := ritualrepo.New(&ritualrepo.Config{Path: cfg.RitualsFile})
	if err != nil {
		return fmt.Errorf("failed to load ritual catalog: %w", err)
	}

	rulesService, err := rules.New(&rules.Config{
		CharacterRepo: characterRepo,
		RitualRepo:    ritualRepo,
		DiceRoller:    dice.DefaultRoller,
		IDGenerator:   idgen.NewUUID("char"),
		Metrics:       metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to create rules orchestrator: %w", err)
	}

	rulesHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RulesService: rulesService})
	if err != nil {
		return fmt.Errorf("failed to create rules handler: %w", err)
	}

	srv, healthServer := newGRPCServer(logger, rulesHandler)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var metricsServer *http.Server
	if cfg.MetricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", provider.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics server starting", "port", cfg.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errChan:
		srv.Stop()
		return err
	}

	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}

	return nil
}

// newGRPCServer registers the rules service and the health server it
// returns. Messages use
// the JSON codec, so there are no file descriptors to serve over reflection.
func newGRPCServer(logger *slog.Logger, rulesHandler v1alpha1.RulesServiceServer) (*grpc.Server, *health.Server) {
	loggerFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(loggerFunc),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(loggerFunc),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterRulesServiceServer(srv, rulesHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, healthServer
}
