// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"matrimony/internal/domain/entity"
)

var (
	// ErrFavoriteNotFound is returned when a favourite record is not found.
	ErrFavoriteNotFound = errors.New("favourite not found")
	// ErrFavoriteExists is returned when the (user, listing) pair is already bookmarked.
	ErrFavoriteExists = errors.New("favourite already exists")
)

// FavoriteRepository defines the standard operations for favourite persistence.
type FavoriteRepository interface {
	// Create persists a new favourite. Inserting an existing (user, listing)
	// pair returns ErrFavoriteExists; the unique constraint backs this up.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByUser retrieves all favourites of an account, newest first.
	FindByUser(ctx context.Context, userEmail string) ([]*entity.Favorite, error)

	// Delete removes the favourite for the (user, listing) pair.
	Delete(ctx context.Context, userEmail string, biodataID int) error
}
