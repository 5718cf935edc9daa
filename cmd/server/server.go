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
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/analysis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external"
	v1alpha1 "github.com/Pallarran/Ultimate-D-D-Tools/internal/handlers/api/v1alpha1"
	buildsorch "github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/builds"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/dice"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/config"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/idgen"
	redisclient "github.com/Pallarran/Ultimate-D-D-Tools/internal/redis"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds"
	dicesession "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/dice_session"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/rules"
)

var (
	grpcPort  int
	logLevel  string
	logFormat string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the ddtools gRPC server with the combat lab, build library and dice
services. Settings come from DDTOOLS_* environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serverCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
}

// loadConfig reads the environment and applies any flags set on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.JSONLogs() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DB:          cfg.RedisDB,
		Password:    cfg.RedisPassword,
		UseTLS:      cfg.RedisTLS,
		DialTimeout: 5 * time.Second,
		MaxRetries:  3,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	srv, err := newGRPCServer(cfg, redisClient, logger)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "redis", cfg.RedisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer wires repositories, orchestrators and handlers onto a new
// server. It does not listen.
func newGRPCServer(cfg *config.Config, redisClient redisclient.Client, logger *slog.Logger) (*grpc.Server, error) {
	clk := clock.New()

	buildRepo, err := builds.NewRedis(&builds.RedisConfig{Client: redisClient, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create build repository: %w", err)
	}
	scenarioRepo, err := scenarios.NewRedis(&scenarios.RedisConfig{Client: redisClient, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario repository: %w", err)
	}
	sessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client:     redisClient,
		Clock:      clk,
		DefaultTTL: cfg.RollSessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	weaponClient, err := external.New(&external.Config{
		BaseURL:     cfg.DND5eBaseURL,
		HTTPTimeout: cfg.DND5eTimeout,
		CacheTTL:    cfg.DND5eCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dnd5e client: %w", err)
	}

	registry, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to create formula registry: %w", err)
	}
	analyzer, err := analysis.New(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	combatLabService, err := combatlab.NewOrchestrator(&combatlab.Config{
		BuildRepo:    buildRepo,
		ScenarioRepo: scenarioRepo,
		Analyzer:     analyzer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat lab service: %w", err)
	}
	buildService, err := buildsorch.NewOrchestrator(&buildsorch.Config{
		BuildRepo:           buildRepo,
		ScenarioRepo:        scenarioRepo,
		WeaponClient:        weaponClient,
		BuildIDGenerator:    idgen.NewUUID("build"),
		ScenarioIDGenerator: idgen.NewUUID("scenario"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create build service: %w", err)
	}
	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: sessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice service: %w", err)
	}

	combatLabHandler, err := v1alpha1.NewCombatLabHandler(&v1alpha1.CombatLabHandlerConfig{
		CombatLabService: combatLabService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat lab handler: %w", err)
	}
	buildHandler, err := v1alpha1.NewBuildHandler(&v1alpha1.BuildHandlerConfig{
		BuildService: buildService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create build handler: %w", err)
	}
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: diceService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice handler: %w", err)
	}

	loggerFunc := interceptorLogger(logger)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(loggerFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(loggerFunc),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterCombatLabServiceServer(srv, combatLabHandler)
	v1alpha1.RegisterBuildServiceServer(srv, buildHandler)
	v1alpha1.RegisterDiceServiceServer(srv, diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{
		v1alpha1.CombatLabServiceName,
		v1alpha1.BuildServiceName,
		v1alpha1.DiceServiceName,
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	return srv, nil
}

// interceptorLogger bridges the middleware logger to slog. Middleware
// levels share slog's numeric values.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in handler", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
