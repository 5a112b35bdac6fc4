// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"matrimony/config"
	"matrimony/internal/domain/entity"
	"matrimony/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Issue creates a signed session token bound to the account's email.
func (s *jwtService) Issue(email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type in session token")
	}

	email, _ := mapClaims["sub"].(string)
	if email == "" {
		return nil, errors.New("email missing from session token")
	}

	roleStr, _ := mapClaims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		role = entity.RoleNormal
	}

	return &service.Claims{Email: email, Role: role}, nil
}

// TTL returns the configured session lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
