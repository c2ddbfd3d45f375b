package models

import "github.com/google/uuid"

// Conflict declares two tasks incompatible for the same user on the listed
// days of week. The pair is unordered and a task never conflicts with itself.
type Conflict struct {
	BaseModel
	Task1ID    uuid.UUID   `json:"-" gorm:"type:uuid;not null;index" validate:"required"`
	Task2ID    uuid.UUID   `json:"-" gorm:"type:uuid;not null;index" validate:"required"`
	DaysOfWeek []DayOfWeek `json:"daysOfWeek" gorm:"serializer:json;type:jsonb" validate:"required,min=1"`

	// Relationships
	Task1 Task `json:"task1,omitempty" gorm:"foreignKey:Task1ID;constraint:OnDelete:CASCADE"`
	Task2 Task `json:"task2,omitempty" gorm:"foreignKey:Task2ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Conflict
func (Conflict) TableName() string {
	return "conflicts"
}

// Involves reports whether the unordered pair {a, b} matches the conflict
func (c *Conflict) Involves(a, b uuid.UUID) bool {
	return (c.Task1ID == a && c.Task2ID == b) || (c.Task1ID == b && c.Task2ID == a)
}

// AppliesOn reports whether the conflict is active on the given day
func (c *Conflict) AppliesOn(day DayOfWeek) bool {
	for _, d := range c.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
