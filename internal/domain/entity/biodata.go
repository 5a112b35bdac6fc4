// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// BiodataType distinguishes the two listing categories shown on the platform.
type BiodataType string

const (
	// BiodataTypeMale indicates a male listing.
	BiodataTypeMale BiodataType = "male"
	// BiodataTypeFemale indicates a female listing.
	BiodataTypeFemale BiodataType = "female"
)

// String returns the string representation of the BiodataType.
func (t BiodataType) String() string {
	return string(t)
}

// IsValid checks if the BiodataType is a valid value.
func (t BiodataType) IsValid() bool {
	switch t {
	case BiodataTypeMale, BiodataTypeFemale:
		return true
	default:
		return false
	}
}

// Biodata is a member's matchmaking listing. Each account owns at most one
// listing, keyed by ContactEmail; the numeric ID is assigned once at first
// creation and never changes on later updates.
type Biodata struct {
	ID                    int         // Sequential listing number, assigned by the ID allocator.
	Type                  BiodataType // male or female.
	Name                  string
	ProfileImage          string
	DateOfBirth           string
	Height                string
	Weight                string
	Age                   int
	Occupation            string
	Race                  string
	FathersName           string
	MothersName           string
	PermanentDivision     string
	PresentDivision       string
	ExpectedPartnerAge    string
	ExpectedPartnerHeight string
	ExpectedPartnerWeight string
	ContactEmail          string // Sensitive. Also the owning account's identity.
	MobileNumber          string // Sensitive.
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RedactContact blanks both sensitive fields. The keys stay present in the
// serialized view with empty values, which existing clients rely on.
func (b *Biodata) RedactContact() {
	b.ContactEmail = ""
	b.MobileNumber = ""
}
