package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/sentimentapi/internal/adapter/metrics"
	"github.com/pscheid92/sentimentapi/internal/domain"
	"github.com/pscheid92/sentimentapi/internal/platform/config"
)

type analysisService interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error)
}

type gateRecorder interface {
	ObserveGateRejection(kind string)
}

type noopGateRecorder struct{}

func (noopGateRecorder) ObserveGateRejection(string) {}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	analysis     analysisService
	gateChecks   []HeaderCheck
	gateRecorder gateRecorder

	registry    *prometheus.Registry
	httpMetrics *metrics.HTTPMetrics

	healthChecks []HealthCheck
	clock        clockwork.Clock
	startTime    time.Time
}

// NewServer wires the HTTP surface. recorder and reg may be nil, which disables
// gate rejection counting and the /metrics endpoint respectively.
func NewServer(cfg *config.Config, analysis analysisService, recorder gateRecorder, reg *prometheus.Registry, healthChecks []HealthCheck, clock clockwork.Clock) *Server {
	if recorder == nil {
		recorder = noopGateRecorder{}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		analysis:     analysis,
		gateChecks:   NewRequestGate(cfg.AcceptMediaType),
		gateRecorder: recorder,
		registry:     reg,
		healthChecks: healthChecks,
		clock:        clock,
		startTime:    clock.Now(),
	}
	if reg != nil {
		srv.httpMetrics = metrics.NewHTTPMetrics(reg)
	}

	e.HTTPErrorHandler = srv.handleHTTPError
	srv.registerRoutes()

	return srv
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
