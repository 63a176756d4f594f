// Package httpserver serves the console pages and the command relay API over
// a registry of live bots.
package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MTMORGUE/botsymax/internal/adapter/metrics"
	"github.com/MTMORGUE/botsymax/internal/platform/config"
	"github.com/MTMORGUE/botsymax/internal/registry"
	"github.com/MTMORGUE/botsymax/web"
)

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	registry *registry.Registry

	templates *template.Template

	promRegistry *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	relayMetrics *metrics.RelayMetrics

	healthChecks []HealthCheck
	clock        clockwork.Clock
	startTime    time.Time
}

func NewServer(cfg *config.Config, reg *registry.Registry, clock clockwork.Clock, promReg *prometheus.Registry, healthChecks []HealthCheck) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	srv := &Server{
		echo:         e,
		config:       cfg,
		registry:     reg,
		templates:    templates,
		promRegistry: promReg,
		httpMetrics:  metrics.NewHTTPMetrics(promReg),
		relayMetrics: metrics.NewRelayMetrics(promReg),
		healthChecks: healthChecks,
		clock:        clock,
		startTime:    clock.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	addr := s.config.Host + ":" + s.config.Port
	slog.Info("Starting server", "addr", addr)
	if err := s.echo.Start(addr); err != nil {
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

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("request validation failed: %w", err)
	}
	return nil
}
