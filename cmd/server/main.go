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

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/sentimentapi/internal/adapter/httpserver"
	"github.com/pscheid92/sentimentapi/internal/adapter/metrics"
	"github.com/pscheid92/sentimentapi/internal/app"
	"github.com/pscheid92/sentimentapi/internal/platform/config"
	"github.com/pscheid92/sentimentapi/internal/platform/logging"
	"github.com/pscheid92/sentimentapi/internal/platform/version"
	"github.com/pscheid92/sentimentapi/internal/sentiment"
)

func runGracefulShutdown(cfg *config.Config, srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, draining requests...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "version", version.Get().String(), "env", cfg.AppEnv, "port", cfg.Port)

	registry := metrics.NewRegistry()
	analysisMetrics := metrics.NewAnalysisMetrics(registry)

	scorer := sentiment.NewVaderScorer()
	if err := scorer.Probe(context.Background()); err != nil {
		slog.Error("Sentiment scorer failed its startup probe", "error", err)
		os.Exit(1)
	}

	classifier := sentiment.NewClassifier(scorer)
	analysisSvc := app.NewService(classifier, analysisMetrics, clock, cfg.ScoringConcurrency)

	healthChecks := []httpserver.HealthCheck{
		{Name: "scorer", Check: scorer.Probe},
	}
	srv := httpserver.NewServer(cfg, analysisSvc, analysisMetrics, registry, healthChecks, clock)

	done := runGracefulShutdown(cfg, srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
