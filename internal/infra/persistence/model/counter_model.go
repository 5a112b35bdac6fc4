package model

// CounterModel mirrors the 'counters' table, one row per named sequence.
// The counter repository bumps Value with a single upsert statement so the
// row never hands the same number to two callers.
type CounterModel struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CounterModel) TableName() string {
	return "counters"
}
