// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"matrimony/internal/domain/entity"
)

// BiodataInput carries every editable listing field. The owning account's
// email is taken from the session, never from the payload.
type BiodataInput struct {
	Type                  string `json:"biodataType" validate:"required,oneof=male female"`
	Name                  string `json:"name" validate:"required,max=100"`
	ProfileImage          string `json:"profileImage" validate:"omitempty,url"`
	DateOfBirth           string `json:"dateOfBirth"`
	Height                string `json:"height"`
	Weight                string `json:"weight"`
	Age                   int    `json:"age" validate:"omitempty,gte=18,lte=120"`
	Occupation            string `json:"occupation"`
	Race                  string `json:"race"`
	FathersName           string `json:"fathersName"`
	MothersName           string `json:"mothersName"`
	PermanentDivision     string `json:"permanentDivision"`
	PresentDivision       string `json:"presentDivision"`
	ExpectedPartnerAge    string `json:"expectedPartnerAge"`
	ExpectedPartnerHeight string `json:"expectedPartnerHeight"`
	ExpectedPartnerWeight string `json:"expectedPartnerWeight"`
	MobileNumber          string `json:"mobileNumber" validate:"required,max=30"`
}

// ListFilter narrows the public browse endpoints.
type ListFilter struct {
	Type     string
	Division string
	MinAge   int
	MaxAge   int
	AgeSort  string
	Page     int
	PageSize int
}

// BiodataUsecase defines the interface for listing management use cases
type BiodataUsecase interface {
	// Save creates the caller's listing on first submission, allocating the
	// next sequential number, and replaces it on later submissions while
	// keeping the original number.
	Save(ctx context.Context, ownerEmail string, input *BiodataInput) (*entity.Biodata, error)

	// GetOwn retrieves the caller's own listing with contact fields intact.
	GetOwn(ctx context.Context, ownerEmail string) (*entity.Biodata, error)

	// GetByID retrieves a single listing rendered through the disclosure
	// policy for the viewing account.
	GetByID(ctx context.Context, viewerEmail string, id int) (*entity.Biodata, error)

	// List retrieves a filtered, paginated page of listings with contact
	// fields blanked, plus the total match count.
	List(ctx context.Context, filter ListFilter) ([]*entity.Biodata, int64, error)

	// ListPremium retrieves listings owned by premium-approved accounts,
	// contact fields blanked.
	ListPremium(ctx context.Context, filter ListFilter) ([]*entity.Biodata, int64, error)
}
