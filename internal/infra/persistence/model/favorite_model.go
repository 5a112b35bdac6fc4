package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique index on
// (user_email, biodata_id) is what turns a repeated bookmark into a
// constraint violation the repository can translate.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_biodata"`
	BiodataID int       `gorm:"not null;uniqueIndex:idx_favorites_user_biodata"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
