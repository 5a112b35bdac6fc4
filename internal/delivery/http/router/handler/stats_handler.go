package handler

import (
	"log/slog"
	"net/http"

	"matrimony/internal/delivery/http/middleware"
	"matrimony/internal/delivery/http/response"
	"matrimony/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Logger  *slog.Logger
}

// StatsHandler holds dependencies for statistics handlers.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
		logger:  params.Logger,
	}
}

// Summary handles the public landing page counters.
func (h *StatsHandler) Summary(c echo.Context) error {
	summary, err := h.statsUC.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// AdminStats handles the admin dashboard counters.
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.statsUC.AdminStats(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
