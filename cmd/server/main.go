package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MTMORGUE/botsymax/internal/adapter/httpserver"
	"github.com/MTMORGUE/botsymax/internal/adapter/metrics"
	"github.com/MTMORGUE/botsymax/internal/bot"
	"github.com/MTMORGUE/botsymax/internal/platform/config"
	"github.com/MTMORGUE/botsymax/internal/platform/logging"
	"github.com/MTMORGUE/botsymax/internal/registry"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRegistry(cfg *config.Config) *registry.Registry {
	bots, err := bot.LoadDefinitions(cfg.BotsConfig)
	if err != nil {
		slog.Error("Failed to load bot definitions", "path", cfg.BotsConfig, "error", err)
		os.Exit(1)
	}

	// The mapping is installed wholesale before traffic starts; handlers
	// only read it afterwards.
	reg := registry.New()
	reg.Set(bots)
	slog.Info("Bots registered", "count", reg.Len())
	return reg
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	reg := setupRegistry(cfg)
	promReg := metrics.NewRegistry()

	healthChecks := []httpserver.HealthCheck{
		{Name: "registry", Check: func(_ context.Context) error {
			if reg.Len() == 0 {
				return errors.New("no bots registered")
			}
			return nil
		}},
	}

	srv, err := httpserver.NewServer(cfg, reg, clock, promReg, healthChecks)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "addr", cfg.Host+":"+cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
