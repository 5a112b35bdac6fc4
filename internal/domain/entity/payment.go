// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the state of a contact-unlock purchase attempt.
// Pending is the only non-terminal state.
type PaymentStatus string

const (
	// PaymentPending indicates a purchase attempt awaiting an outcome.
	PaymentPending PaymentStatus = "Pending"
	// PaymentApproved indicates a confirmed purchase; it grants the unlock.
	PaymentApproved PaymentStatus = "Approved"
	// PaymentCanceled indicates the buyer abandoned the purchase.
	PaymentCanceled PaymentStatus = "Canceled"
	// PaymentFailed indicates the gateway rejected the purchase.
	PaymentFailed PaymentStatus = "Failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentApproved, PaymentCanceled, PaymentFailed:
		return true
	default:
		return false
	}
}

// Payment records one contact-unlock purchase attempt. A (requester, target)
// pair may accumulate several attempts over time; any single Approved record
// unlocks the target's contact fields for that requester.
type Payment struct {
	ID             uuid.UUID
	TranID         string // Gateway-facing transaction ID; unique.
	RequesterEmail string // The buying account.
	BiodataID      int    // The listing whose contact info is being purchased.
	AmountCents    int64
	Currency       string
	Provider       string // Which gateway handled the attempt.
	Method         string // Payment instrument as reported by the gateway.
	RedirectURL    string // Hosted checkout page, kept while Pending for QR rendering.
	Status         PaymentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanTransition reports whether the payment may move to the given status.
// Terminal records accept nothing, including a repeat of their own state.
func (p *Payment) CanTransition(to PaymentStatus) bool {
	return p.Status == PaymentPending && to.IsTerminal()
}
