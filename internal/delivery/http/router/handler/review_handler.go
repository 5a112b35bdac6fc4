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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for success story handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// Submit handles posting a success story.
func (h *ReviewHandler) Submit(c echo.Context) error {
	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.reviewUC.Submit(c.Request().Context(), middleware.SessionEmail(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted")
}

// List handles the public success story feed.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}
