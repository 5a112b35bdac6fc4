// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"matrimony/internal/domain/entity"
)

// ErrBiodataNotFound is a domain-specific error returned when a listing is not found.
var ErrBiodataNotFound = errors.New("biodata not found")

// BiodataFilter narrows list and search queries. Zero values mean "any".
// Listings returned through filtered queries never include the sensitive
// contact columns; they are projected out at the query.
type BiodataFilter struct {
	Type        entity.BiodataType
	Division    string
	MinAge      int
	MaxAge      int
	PremiumOnly bool
	AgeSort     string // "asc" or "desc"; empty for newest-first.
	Page        int    // 1-based.
	PageSize    int
}

// BiodataRepository defines the standard operations for listing persistence.
type BiodataRepository interface {
	// FindByID retrieves a single listing by its sequential number.
	FindByID(ctx context.Context, id int) (*entity.Biodata, error)

	// FindByEmail retrieves the listing owned by the given account.
	FindByEmail(ctx context.Context, email string) (*entity.Biodata, error)

	// List retrieves listings matching the filter with the contact columns
	// projected out, plus the total match count for pagination.
	List(ctx context.Context, filter BiodataFilter) ([]*entity.Biodata, int64, error)

	// Upsert creates or replaces the listing keyed by its ContactEmail.
	Upsert(ctx context.Context, biodata *entity.Biodata) error

	// CountByType returns the total number of listings and the male/female split.
	CountByType(ctx context.Context) (total, male, female int64, err error)
}
