package usecase

import (
	"context"
	"time"

	"matrimony/internal/domain/entity"
)

// LoginInput carries the identity attributes presented at sign-in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UserUsecase defines the interface for account management use cases
type UserUsecase interface {
	// Login upserts the account record and issues a session token. Role and
	// premium status survive repeat logins untouched.
	Login(ctx context.Context, input *LoginInput) (*Session, error)

	// GetSelf retrieves the caller's own account record.
	GetSelf(ctx context.Context, email string) (*entity.User, error)

	// RequestPremium moves the caller's premium status from none to pending.
	RequestPremium(ctx context.Context, email string) (*entity.User, error)

	// ListUsers retrieves accounts matching the name or email fragment.
	// Admin only.
	ListUsers(ctx context.Context, viewerEmail, fragment string) ([]*entity.User, error)

	// GrantRole changes an account's role. Admin only.
	GrantRole(ctx context.Context, viewerEmail, targetEmail string, role entity.Role) (*entity.User, error)

	// ApprovePremium settles a pending premium request. Admin only.
	ApprovePremium(ctx context.Context, viewerEmail, targetEmail string) (*entity.User, error)
}
