// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// BiodataModel mirrors the 'biodatas' table. The primary key is the
// sequential listing number handed out by the counter table, not a
// database-generated value; the contact email carries a unique index so
// one account can never own two listings.
type BiodataModel struct {
	ID                    int    `gorm:"primaryKey;autoIncrement:false"`
	Type                  string `gorm:"type:varchar(10);not null;index"`
	Name                  string `gorm:"type:varchar(100);not null"`
	ProfileImage          string `gorm:"type:text"`
	DateOfBirth           string `gorm:"type:varchar(30)"`
	Height                string `gorm:"type:varchar(20)"`
	Weight                string `gorm:"type:varchar(20)"`
	Age                   int    `gorm:"index"`
	Occupation            string `gorm:"type:varchar(100)"`
	Race                  string `gorm:"type:varchar(50)"`
	FathersName           string `gorm:"type:varchar(100)"`
	MothersName           string `gorm:"type:varchar(100)"`
	PermanentDivision     string `gorm:"type:varchar(50);index"`
	PresentDivision       string `gorm:"type:varchar(50)"`
	ExpectedPartnerAge    string `gorm:"type:varchar(20)"`
	ExpectedPartnerHeight string `gorm:"type:varchar(20)"`
	ExpectedPartnerWeight string `gorm:"type:varchar(20)"`
	ContactEmail          string `gorm:"type:varchar(255);unique;not null"`
	MobileNumber          string `gorm:"type:varchar(30)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (BiodataModel) TableName() string {
	return "biodatas"
}
