// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite bookmarks a listing for an account. The (UserEmail, BiodataID)
// pair is unique; inserting an existing pair is reported back as already
// present rather than treated as an error.
type Favorite struct {
	ID        uuid.UUID
	UserEmail string // The bookmarking account.
	BiodataID int    // The bookmarked listing.
	CreatedAt time.Time
}
