// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"matrimony/internal/domain/entity"
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// List retrieves all reviews, newest first.
	List(ctx context.Context) ([]*entity.Review, error)
}
