package models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is one assignment of a user to a task on a calendar date.
// (user, task, date) is unique. Generated entries carry Generated=true so a
// regeneration run can replace them without touching manual edits.
type Schedule struct {
	BaseModel
	TaskID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index;uniqueIndex:idx_schedules_user_task_date" validate:"required"`
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index;uniqueIndex:idx_schedules_user_task_date" validate:"required"`
	Date      time.Time `json:"date" gorm:"type:date;not null;index;uniqueIndex:idx_schedules_user_task_date" validate:"required"`
	Generated bool      `json:"generated" gorm:"default:false"`

	// Relationships
	Task Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Schedule
func (Schedule) TableName() string {
	return "schedules"
}

// WeekRevision carries the optimistic concurrency version for one schedule
// week. Schedule writes state the revision they read; a mismatch rejects the
// write instead of silently dropping concurrent edits.
type WeekRevision struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WeekStart time.Time `json:"weekStart" gorm:"type:date;not null;uniqueIndex"`
	Revision  int64     `json:"revision" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for WeekRevision
func (WeekRevision) TableName() string {
	return "week_revisions"
}

// WeekStartOf returns the Monday of the week containing the date
func WeekStartOf(date time.Time) time.Time {
	d := date
	for DayOfWeekFromTime(d) != Monday {
		d = d.AddDate(0, 0, -1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
