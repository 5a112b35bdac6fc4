// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"matrimony/internal/domain/entity"
)

// ErrPaymentNotFound is returned when a payment record is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for purchase persistence.
type PaymentRepository interface {
	// Create persists a new purchase attempt in the Pending state.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByTranID retrieves a purchase by its gateway transaction ID.
	FindByTranID(ctx context.Context, tranID string) (*entity.Payment, error)

	// FindByRequester retrieves all purchase attempts of an account, newest first.
	FindByRequester(ctx context.Context, requesterEmail string) ([]*entity.Payment, error)

	// ListAll retrieves every purchase record, newest first.
	ListAll(ctx context.Context) ([]*entity.Payment, error)

	// UpdateOutcome moves a Pending record identified by tranID into the
	// given terminal status and stores the reported payment method. The
	// update matches on the Pending state; a record already settled is left
	// untouched and reported via the returned flag.
	UpdateOutcome(ctx context.Context, tranID string, status entity.PaymentStatus, method string) (changed bool, err error)

	// HasApproved reports whether at least one Approved record exists for
	// the exact (requester, listing) pair.
	HasApproved(ctx context.Context, requesterEmail string, biodataID int) (bool, error)

	// Delete removes a purchase record by its transaction ID.
	Delete(ctx context.Context, tranID string) error

	// SumApprovedAmount totals the amount of all Approved records.
	SumApprovedAmount(ctx context.Context) (int64, error)
}
