// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform, keyed by email. It carries the role
// and premium entitlement read by the disclosure policy. User records are
// upserted idempotently each time a session is created.
type User struct {
	ID        uuid.UUID     // The Global Unique Identifier (GUID) for the account row.
	Email     string        // The account identity; unique.
	Name      string        // Display name captured at login.
	PhotoURL  string        // Avatar captured at login; may be empty.
	Role      Role          // normal or admin.
	Premium   PremiumStatus // none, pending or approved.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsPremium reports whether the premium entitlement has been approved.
// Pending requests grant nothing.
func (u *User) IsPremium() bool {
	return u.Premium == PremiumApproved
}
