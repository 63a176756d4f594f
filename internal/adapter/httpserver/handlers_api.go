package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MTMORGUE/botsymax/internal/adapter/metrics"
	apperrors "github.com/MTMORGUE/botsymax/internal/platform/errors"
)

type commandRequest struct {
	Bot     string `json:"bot" validate:"required"`
	Command string `json:"command" validate:"required"`
}

// handleCommand relays a console command to the addressed bot. Delivery is
// synchronous on the request goroutine: no queue, no retry, no timeout. A
// slow handler stalls only this request.
func (s *Server) handleCommand(c echo.Context) error {
	ctx := c.Request().Context()

	var req commandRequest
	if err := c.Bind(&req); err != nil {
		s.relayMetrics.Record(metrics.RelayOutcomeRejected)
		return apperrors.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		s.relayMetrics.Record(metrics.RelayOutcomeRejected)
		return apperrors.ValidationError("bot and command are required")
	}

	bot, ok := s.registry.Lookup(req.Bot)
	if !ok {
		s.relayMetrics.Record(metrics.RelayOutcomeNotFound)
		return apperrors.NotFoundError("Bot not found").WithField("bot", req.Bot)
	}

	if err := bot.HandleCommand(req.Command); err != nil {
		s.relayMetrics.Record(metrics.RelayOutcomeFailed)
		return apperrors.InternalError(err.Error(), err).WithField("bot", req.Bot)
	}

	s.relayMetrics.Record(metrics.RelayOutcomeDelivered)
	slog.InfoContext(ctx, "Command relayed", "bot", req.Bot)

	if err := c.JSON(http.StatusOK, map[string]string{"status": "Command executed"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
