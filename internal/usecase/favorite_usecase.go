package usecase

import (
	"context"

	"matrimony/internal/domain/entity"
)

// FavoriteResult reports the outcome of a bookmark attempt. A pair that is
// already bookmarked comes back with AlreadyExists set instead of an error.
type FavoriteResult struct {
	Favorite      *entity.Favorite
	AlreadyExists bool
}

// FavoriteItem pairs a bookmark with the listing it points at. The listing
// always has its contact fields blanked.
type FavoriteItem struct {
	Favorite *entity.Favorite
	Biodata  *entity.Biodata
}

// FavoriteUsecase defines the interface for bookmark management use cases
type FavoriteUsecase interface {
	// Add bookmarks a listing for the caller.
	Add(ctx context.Context, userEmail string, biodataID int) (*FavoriteResult, error)

	// List retrieves the caller's bookmarks with their listings, newest first.
	List(ctx context.Context, userEmail string) ([]*FavoriteItem, error)

	// Remove deletes the caller's bookmark of a listing.
	Remove(ctx context.Context, userEmail string, biodataID int) error
}
