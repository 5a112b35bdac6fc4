package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. The transaction ID is unique so
// gateway callbacks can address exactly one purchase attempt; the status
// column is indexed because settlement updates match on it.
type PaymentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TranID         string    `gorm:"type:varchar(64);unique;not null"`
	RequesterEmail string    `gorm:"type:varchar(255);not null;index"`
	BiodataID      int       `gorm:"not null;index"`
	AmountCents    int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(10);not null"`
	Provider       string    `gorm:"type:varchar(30);not null"`
	Method         string    `gorm:"type:varchar(50)"`
	RedirectURL    string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
