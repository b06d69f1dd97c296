package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/roster/internal/api"
	"example.com/roster/internal/config"
	"example.com/roster/internal/domain"
	"example.com/roster/internal/logging"
	"example.com/roster/internal/observability"
	"example.com/roster/internal/persistence/memory"
	httptransport "example.com/roster/internal/transport/http"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	seed := memory.DefaultActivities()
	if cfg.SeedFile != "" {
		seed, err = memory.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			logger.Fatal("failed to load seed file", zap.String("path", cfg.SeedFile), zap.Error(err))
		}
		logger.Info("loaded roster seed", zap.String("path", cfg.SeedFile), zap.Int("activities", len(seed)))
	}

	registry := memory.NewRegistry(seed, memory.WithCapacityEnforcement(cfg.CapacityEnforcement))
	for _, activity := range seed {
		observability.SetRosterSize(activity.Name, len(activity.Participants))
	}

	service := domain.NewService(registry)
	handler := api.NewHandler(service, cfg.StaticDir)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	chain := api.RequestLogger(logger)(api.Metrics(api.CORS(cfg.AllowedOrigin)(mux)))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, chain)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("roster service listening",
			zap.String("address", cfg.HTTPAddress),
			zap.Bool("capacity_enforcement", cfg.CapacityEnforcement),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
