package models

import "time"

// SpecialDate alters eligibility for one calendar date. FEAST dates are
// excluded from generation; STATS_START is an annotation.
type SpecialDate struct {
	BaseModel
	Date time.Time       `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Type SpecialDateType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
}

// TableName returns the table name for SpecialDate
func (SpecialDate) TableName() string {
	return "special_dates"
}
