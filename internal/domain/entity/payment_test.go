package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, PaymentPending.IsTerminal())
	assert.True(t, PaymentApproved.IsTerminal())
	assert.True(t, PaymentCanceled.IsTerminal())
	assert.True(t, PaymentFailed.IsTerminal())
	assert.False(t, PaymentStatus("garbage").IsTerminal())
}

func TestPayment_CanTransition(t *testing.T) {
	pending := &Payment{Status: PaymentPending}
	assert.True(t, pending.CanTransition(PaymentApproved))
	assert.True(t, pending.CanTransition(PaymentCanceled))
	assert.True(t, pending.CanTransition(PaymentFailed))
	assert.False(t, pending.CanTransition(PaymentPending))

	approved := &Payment{Status: PaymentApproved}
	assert.False(t, approved.CanTransition(PaymentCanceled))
	assert.False(t, approved.CanTransition(PaymentApproved))
}
