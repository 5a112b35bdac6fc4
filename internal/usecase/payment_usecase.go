package usecase

import (
	"context"

	"matrimony/internal/domain/entity"
)

// CallbackOutcome names the gateway redirect a callback arrived on.
type CallbackOutcome string

const (
	// OutcomeSuccess is the aggregator's success redirect; it is verified
	// with the gateway before any state change.
	OutcomeSuccess CallbackOutcome = "success"
	// OutcomeFail is the aggregator's failure redirect.
	OutcomeFail CallbackOutcome = "fail"
	// OutcomeCancel is the aggregator's cancellation redirect.
	OutcomeCancel CallbackOutcome = "cancel"
)

// CardIntentResult is the card gateway's answer to an intent creation.
type CardIntentResult struct {
	TranID       string
	ClientSecret string
	AmountCents  int64
	Currency     string
}

// CheckoutResult is the hosted-checkout gateway's answer to a session start.
type CheckoutResult struct {
	TranID      string
	RedirectURL string
}

// ContactRequest is one purchase attempt as shown to its requester. The
// target's contact fields are present only when the attempt is Approved.
type ContactRequest struct {
	Payment      *entity.Payment
	BiodataName  string
	ContactEmail string
	MobileNumber string
}

// PaymentUsecase defines the interface for contact-unlock purchase use cases
type PaymentUsecase interface {
	// CreateCardIntent opens a Pending purchase through the card gateway and
	// returns the client secret the browser completes the charge with.
	CreateCardIntent(ctx context.Context, requesterEmail string, biodataID int) (*CardIntentResult, error)

	// ConfirmCard settles a card purchase on the client's word. The record
	// must be Pending and owned by the caller.
	ConfirmCard(ctx context.Context, requesterEmail, tranID string) (*entity.Payment, error)

	// Checkout opens a Pending purchase through the hosted-checkout gateway
	// and returns the URL to redirect the buyer to.
	Checkout(ctx context.Context, requesterEmail string, biodataID int) (*CheckoutResult, error)

	// CheckoutQR renders the caller's pending checkout redirect URL as a
	// PNG QR code for cross-device payment.
	CheckoutQR(ctx context.Context, requesterEmail, tranID string) ([]byte, error)

	// HandleCallback settles a purchase from a gateway redirect. The success
	// outcome is verified with the gateway first; a record already settled
	// is left untouched.
	HandleCallback(ctx context.Context, outcome CallbackOutcome, tranID string) error

	// ListOwn retrieves the caller's purchase attempts, joined with the
	// target contact details where approved.
	ListOwn(ctx context.Context, requesterEmail string) ([]*ContactRequest, error)

	// Cancel deletes the caller's own Pending purchase attempt.
	Cancel(ctx context.Context, requesterEmail, tranID string) error

	// IsUnlocked reports whether the caller holds an Approved purchase for
	// the listing.
	IsUnlocked(ctx context.Context, requesterEmail string, biodataID int) (bool, error)

	// ListAll retrieves every purchase record. Admin only.
	ListAll(ctx context.Context, viewerEmail string) ([]*entity.Payment, error)

	// Approve manually settles a Pending purchase. Admin only.
	Approve(ctx context.Context, viewerEmail, tranID string) (*entity.Payment, error)
}
