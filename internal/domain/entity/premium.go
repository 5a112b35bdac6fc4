// Package entity contains the core business objects of the project.
package entity

// PremiumStatus tracks the blanket-disclosure entitlement of an account.
// Only the approved state grants anything; pending is a request awaiting an
// admin decision.
type PremiumStatus string

const (
	// PremiumNone indicates no premium request has been made.
	PremiumNone PremiumStatus = "none"
	// PremiumPending indicates a premium request awaiting admin approval.
	PremiumPending PremiumStatus = "pending"
	// PremiumApproved indicates an admin-approved premium entitlement.
	PremiumApproved PremiumStatus = "approved"
)

// String returns the string representation of the PremiumStatus.
func (s PremiumStatus) String() string {
	return string(s)
}

// IsValid checks if the PremiumStatus is a valid value.
func (s PremiumStatus) IsValid() bool {
	switch s {
	case PremiumNone, PremiumPending, PremiumApproved:
		return true
	default:
		return false
	}
}
