// Package service defines domain-level capability interfaces implemented by
// the infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"matrimony/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	Email string
	Role  entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token bound to the account's email.
	Issue(email string, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
