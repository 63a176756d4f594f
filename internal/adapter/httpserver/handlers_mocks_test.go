package httpserver

import (
	"errors"
	"html/template"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/MTMORGUE/botsymax/internal/adapter/metrics"
	"github.com/MTMORGUE/botsymax/internal/domain"
	"github.com/MTMORGUE/botsymax/internal/platform/config"
	"github.com/MTMORGUE/botsymax/internal/registry"
)

// --- Mock implementations ---

type mockBot struct {
	status          string
	mood            string
	handleCommandFn func(cmd string) error
}

func (b *mockBot) Status() string { return b.status }
func (b *mockBot) Mood() string   { return b.mood }

func (b *mockBot) HandleCommand(cmd string) error {
	if b.handleCommandFn != nil {
		return b.handleCommandFn(cmd)
	}
	return errors.New("not implemented")
}

// --- Test helpers ---

func newTestServer(t *testing.T, reg *registry.Registry, opts ...func(*Server)) *Server {
	t.Helper()

	tmpl := template.Must(template.New("dashboard.html").Parse(
		`Dashboard{{range .Bots}} [{{.Name}} {{.Status}} {{.Mood}}]{{end}}`))
	template.Must(tmpl.New("bots.html").Parse(
		`Bots{{range .Bots}} [{{.Name}} {{.Status}} {{.Mood}}]{{end}}`))
	template.Must(tmpl.New("bot.html").Parse(
		`{{.Name}} {{.Status}} {{.Mood}} log={{.Log}}`))

	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	clock := clockwork.NewFakeClock()
	promReg := metrics.NewRegistry()

	srv := &Server{
		echo:         e,
		config:       &config.Config{Host: "127.0.0.1", Port: "8760"},
		registry:     reg,
		templates:    tmpl,
		promRegistry: promReg,
		httpMetrics:  metrics.NewHTTPMetrics(promReg),
		relayMetrics: metrics.NewRelayMetrics(promReg),
		clock:        clock,
		startTime:    clock.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func registryWith(bots map[string]domain.Bot) *registry.Registry {
	reg := registry.New()
	reg.Set(bots)
	return reg
}
