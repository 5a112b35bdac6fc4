// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"matrimony/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Upsert creates the account on first login and refreshes the mutable
	// login fields (name, photo) on subsequent logins. Role and premium
	// status are never touched by the upsert.
	Upsert(ctx context.Context, user *entity.User) error

	// UpdateRole changes the account's role.
	UpdateRole(ctx context.Context, email string, role entity.Role) error

	// UpdatePremium changes the account's premium status.
	UpdatePremium(ctx context.Context, email string, status entity.PremiumStatus) error

	// Search retrieves accounts whose name or email contains the given
	// fragment; an empty fragment lists everyone.
	Search(ctx context.Context, fragment string) ([]*entity.User, error)

	// CountPremium returns the number of premium-approved accounts.
	CountPremium(ctx context.Context) (int64, error)
}
