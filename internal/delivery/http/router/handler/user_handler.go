package handler

import (
	"log/slog"
	"net/http"

	"matrimony/internal/delivery/http/middleware"
	"matrimony/internal/delivery/http/response"
	"matrimony/internal/domain/entity"
	"matrimony/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// GrantRoleRequest represents the request body for changing an account's role
type GrantRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=normal admin"`
}

// GetSelf handles fetching the caller's own account record.
func (h *UserHandler) GetSelf(c echo.Context) error {
	user, err := h.userUC.GetSelf(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// RequestPremium handles the caller asking for the premium entitlement.
func (h *UserHandler) RequestPremium(c echo.Context) error {
	user, err := h.userUC.RequestPremium(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Premium requested")
}

// List handles the admin account search.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context(), middleware.SessionEmail(c), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GrantRole handles the admin changing an account's role.
func (h *UserHandler) GrantRole(c echo.Context) error {
	var req GrantRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.GrantRole(
		c.Request().Context(),
		middleware.SessionEmail(c),
		c.Param("email"),
		entity.Role(req.Role),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Role updated")
}

// ApprovePremium handles the admin settling a pending premium request.
func (h *UserHandler) ApprovePremium(c echo.Context) error {
	user, err := h.userUC.ApprovePremium(c.Request().Context(), middleware.SessionEmail(c), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Premium approved")
}
