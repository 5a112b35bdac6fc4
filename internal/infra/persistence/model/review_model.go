package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorEmail  string    `gorm:"type:varchar(255);not null"`
	AuthorName   string    `gorm:"type:varchar(100);not null"`
	Rating       int       `gorm:"not null"`
	Text         string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:text"`
	MarriageDate string    `gorm:"type:varchar(30)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
