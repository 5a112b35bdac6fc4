// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a free-form success story shown on the landing page.
type Review struct {
	ID           uuid.UUID
	AuthorEmail  string
	AuthorName   string
	Rating       int // 1 to 5 stars.
	Text         string
	ImageURL     string
	MarriageDate string
	CreatedAt    time.Time
}
