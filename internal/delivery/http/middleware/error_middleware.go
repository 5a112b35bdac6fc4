package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"matrimony/internal/delivery/http/response"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Repository sentinels surface as plain 404s.
	if appErr, ok := asNotFound(err); ok {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), "")

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
}

// asNotFound maps the persistence layer's not-found sentinels onto their
// AppError counterparts.
func asNotFound(err error) (domainerrors.AppError, bool) {
	switch {
	case errors.Is(err, repository.ErrBiodataNotFound):
		return domainerrors.ErrBiodataNotFound, true
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound, true
	case errors.Is(err, repository.ErrPaymentNotFound):
		return domainerrors.ErrPaymentNotFound, true
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return domainerrors.ErrFavoriteNotFound, true
	default:
		return nil, false
	}
}
