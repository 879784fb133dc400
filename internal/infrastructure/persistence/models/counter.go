package models

// CounterModel stores the last value handed out for a sequence
type CounterModel struct {
	Type  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CounterModel) TableName() string {
	return "counters"
}
