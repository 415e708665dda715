package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/api"
	"UltimateCareer/service/career/internal/auth"
	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/config"
	"UltimateCareer/service/career/internal/db"
	"UltimateCareer/service/career/internal/lock"
	"UltimateCareer/service/career/internal/market"
	"UltimateCareer/service/career/internal/metrics"
	"UltimateCareer/service/career/internal/schedule"
	"UltimateCareer/service/career/internal/squad"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// Bootstrap di logging e config.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config.LoadDotenv(logger, ".env")
	cfg, err := config.Load()
	if err != nil {
		logger.Error("config non valida", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if cfg.MigrateOnStart {
		version, err := db.Migrate(database.DB)
		if err != nil {
			logger.Error("migrazioni fallite", "error", err)
			os.Exit(1)
		}
		logger.Info("schema aggiornato", "version", version)
	}

	// Redis serve solo al lock sugli acquisti.
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer rdb.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis non raggiungibile, gli acquisti falliranno finche' non torna", "addr", cfg.RedisAddr, "error", err)
	}
	cancel()
	locker := lock.NewRedisLock(rdb, cfg.LockTTL, cfg.LockRetries, cfg.LockBackoff)

	// Servizi di dominio; la career fa da guardia di ownership per gli altri.
	careers := career.NewService(career.NewRepo(database), logger)
	squads := squad.NewService(squad.NewRepo(database), careers, logger)
	markets := market.NewService(market.NewRepo(database), careers, locker, logger)
	schedules := schedule.NewReader(schedule.NewRepo(database), careers, logger)

	m := metrics.New()
	verifier := auth.NewVerifier(cfg.JWTSecret)

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		m.UnaryServerInterceptor(),
		verifier.UnaryServerInterceptor(healthpb.Health_Check_FullMethodName),
	))
	careerv1.RegisterCareerServiceServer(server, api.NewGRPCServer(logger, careers, squads, markets, schedules))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(careerv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux(m),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics listening", "addr", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics serve failed", "error", err)
		}
	}()

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen failed", "error", err)
		os.Exit(1)
	}

	// Chiusura ordinata su SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutdown in corso")
		healthServer.Shutdown()
		server.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("career grpc listening", "addr", cfg.GRPCAddr)
	if err := server.Serve(listener); err != nil {
		logger.Error("grpc serve failed", "error", err)
		os.Exit(1)
	}
}

func metricsMux(m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}
