package models

import (
	"time"

	"github.com/google/uuid"
)

// Obstacle is a user-declared inability to perform one or more tasks over a
// date range. It starts AWAITING and a supervisor moves it to APPROVED or
// REJECTED; terminal states are immutable and retained for audit.
type Obstacle struct {
	BaseModel
	UserID               uuid.UUID      `json:"-" gorm:"type:uuid;not null;index" validate:"required"`
	FromDate             time.Time      `json:"fromDate" gorm:"type:date;not null" validate:"required"`
	ToDate               time.Time      `json:"toDate" gorm:"type:date;not null" validate:"required"`
	ApplicantDescription string         `json:"applicantDescription" gorm:"type:text"`
	Status               ObstacleStatus `json:"status" gorm:"type:varchar(20);not null;default:'AWAITING'"`
	RecipientAnswer      string         `json:"recipientAnswer" gorm:"type:text"`
	RecipientUserID      *uuid.UUID     `json:"-" gorm:"type:uuid"`

	// Relationships
	User          User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RecipientUser *User  `json:"recipientUser,omitempty" gorm:"foreignKey:RecipientUserID"`
	Tasks         []Task `json:"tasks,omitempty" gorm:"many2many:obstacle_tasks;"`
}

// TableName returns the table name for Obstacle
func (Obstacle) TableName() string {
	return "obstacles"
}

// Covers reports whether the obstacle spans the given date
func (o *Obstacle) Covers(date time.Time) bool {
	return !date.Before(o.FromDate) && !date.After(o.ToDate)
}

// CoversTask reports whether the obstacle lists the given task
func (o *Obstacle) CoversTask(taskID uuid.UUID) bool {
	for _, t := range o.Tasks {
		if t.ID == taskID {
			return true
		}
	}
	return false
}

// Blocks reports whether the obstacle disqualifies its user from the task on
// the date: approved, date in range, task listed.
func (o *Obstacle) Blocks(taskID uuid.UUID, date time.Time) bool {
	return o.Status == ObstacleStatusApproved && o.Covers(date) && o.CoversTask(taskID)
}
