package handler

import (
	"log/slog"
	"net/http"
	"time"

	"matrimony/config"
	"matrimony/internal/delivery/http/response"
	"matrimony/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
	Config *config.Config
}

// AuthHandler holds dependencies for session handlers.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
	cfg    *config.Config
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
		cfg:    params.Config,
	}
}

// SessionResponse is the payload returned on sign-in.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      any       `json:"user"`
}

// CreateSession handles sign-in. It upserts the account record, issues the
// session token and sets it as a cookie alongside the JSON payload.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	session, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      session.User,
	}, "Signed in")
}

// DeleteSession handles sign-out by expiring the session cookie. The token
// itself stays valid until its expiry; there is no server-side revocation.
func (h *AuthHandler) DeleteSession(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"status": "signed out"}, "Signed out")
}
