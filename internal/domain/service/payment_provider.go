// Package service defines domain-level capability interfaces implemented by
// the infrastructure layer.
package service

import (
	"context"
	"errors"
)

// TrustModel states how a provider's payment outcome is established.
type TrustModel string

const (
	// TrustClientAsserted means the server never hears from the gateway;
	// confirmation comes from the paying client. A known weak spot kept for
	// the legacy card flow.
	TrustClientAsserted TrustModel = "client-asserted"
	// TrustServerVerified means the outcome is confirmed with the gateway
	// before any state transition. Required for all new integrations.
	TrustServerVerified TrustModel = "server-verified"
)

// ErrVerifyUnsupported is returned by providers whose trust model has no
// server-side verification call.
var ErrVerifyUnsupported = errors.New("provider does not support server-side verification")

// InitiateRequest carries what a gateway needs to start a purchase.
type InitiateRequest struct {
	TranID         string
	AmountCents    int64
	Currency       string
	RequesterEmail string
	ProductName    string
}

// Initiation is a gateway's answer to a purchase start. Exactly one of
// ClientSecret (card flow) or RedirectURL (hosted checkout flow) is set.
type Initiation struct {
	ClientSecret string
	RedirectURL  string
}

// Verification is a gateway's answer to a server-side outcome check.
type Verification struct {
	Valid  bool
	Method string // Payment instrument as reported by the gateway.
}

// PaymentProvider is the single capability both gateways are driven
// through. Callers branch on TrustModel, never on the concrete type.
type PaymentProvider interface {
	// Name identifies the provider in stored payment records.
	Name() string

	// TrustModel states how outcomes from this provider are established.
	TrustModel() TrustModel

	// Initiate starts a purchase with the gateway.
	Initiate(ctx context.Context, req InitiateRequest) (*Initiation, error)

	// Verify confirms a transaction's outcome with the gateway. Providers
	// with the client-asserted trust model return ErrVerifyUnsupported.
	Verify(ctx context.Context, tranID string) (*Verification, error)
}
