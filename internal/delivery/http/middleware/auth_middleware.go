// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"matrimony/config"
	"matrimony/internal/delivery/http/response"
	"matrimony/internal/domain/entity"
	"matrimony/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyEmail = "sessionEmail"
	contextKeyRole  = "sessionRole"
)

// AuthMiddleware validates session tokens and exposes the session identity
// to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the session token from either the Authorization
// bearer header or the session cookie and stores the identity on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "sign in to continue")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_INVALID", "invalid or expired session")
		}

		c.Set(contextKeyEmail, claims.Email)
		c.Set(contextKeyRole, claims.Role)

		return next(c)
	}
}

// extractToken reads the bearer header first and falls back to the session
// cookie, so browser clients and API clients share the same middleware.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
	}

	cookie, err := c.Cookie(m.cfg.Session.CookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// SessionEmail returns the authenticated account's email set by Authenticate.
func SessionEmail(c echo.Context) string {
	email, _ := c.Get(contextKeyEmail).(string)

	return email
}

// SessionRole returns the token's role claim set by Authenticate. Handlers
// use it only as a hint; authorization decisions re-read the account record.
func SessionRole(c echo.Context) entity.Role {
	role, ok := c.Get(contextKeyRole).(entity.Role)
	if !ok {
		return entity.RoleNormal
	}

	return role
}
