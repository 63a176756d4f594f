package httpserver

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/MTMORGUE/botsymax/internal/domain"
)

// botViews snapshots the registry and reads status and mood from every live
// handle. Called once per request so each render reflects the state at that
// moment.
func (s *Server) botViews() []domain.BotView {
	bots := s.registry.All()

	names := make([]string, 0, len(bots))
	for name := range bots {
		names = append(names, name)
	}
	slices.Sort(names)

	views := make([]domain.BotView, 0, len(names))
	for _, name := range names {
		bot := bots[name]
		views = append(views, domain.BotView{
			Name:   name,
			Status: bot.Status(),
			Mood:   bot.Mood(),
		})
	}
	return views
}

func (s *Server) handleIndex(c echo.Context) error {
	return s.handleDashboard(c)
}

func (s *Server) handleDashboard(c echo.Context) error {
	data := map[string]any{
		"Bots": s.botViews(),
	}
	return s.renderTemplate(c, "dashboard.html", data)
}

func (s *Server) handleBots(c echo.Context) error {
	data := map[string]any{
		"Bots": s.botViews(),
	}
	return s.renderTemplate(c, "bots.html", data)
}

func (s *Server) handleBotDetail(c echo.Context) error {
	name := c.Param("name")

	bot, ok := s.registry.Lookup(name)
	if !ok {
		// The detail view answers not-found itself, unlike the JSON
		// error the command API produces.
		if err := c.String(http.StatusNotFound, "Bot not found"); err != nil {
			return fmt.Errorf("failed to send not-found response: %w", err)
		}
		return nil
	}

	data := map[string]any{
		"Name":   name,
		"Status": bot.Status(),
		"Mood":   bot.Mood(),
		// Placeholder: bot activity is not wired to a real log source.
		"Log": "Sample log output for " + name,
	}
	return s.renderTemplate(c, "bot.html", data)
}
