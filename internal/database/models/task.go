package models

import "github.com/google/uuid"

// Task is a schedulable duty. A task is assignable on day d only if
// d is in DaysOfWeek, and only to users holding at least one allowed role.
type Task struct {
	BaseModel
	Name                             string      `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	NameAbbrev                       string      `json:"nameAbbrev" gorm:"size:20" validate:"max=20"`
	ParticipantsLimit                int         `json:"participantsLimit" gorm:"not null;default:1" validate:"required,min=1"`
	Permanent                        bool        `json:"permanent" gorm:"default:false"`
	SupervisorRoleID                 uuid.UUID   `json:"-" gorm:"type:uuid;not null;index" validate:"required"`
	SortOrder                        int64       `json:"sortOrder" gorm:"not null;default:0"`
	VisibleInObstacleFormForUserRole bool        `json:"visibleInObstacleFormForUserRole" gorm:"default:true"`
	DaysOfWeek                       []DayOfWeek `json:"daysOfWeek" gorm:"serializer:json;type:jsonb" validate:"required,min=1"`

	// Relationships
	SupervisorRole Role   `json:"supervisorRole,omitempty" gorm:"foreignKey:SupervisorRoleID"`
	AllowedRoles   []Role `json:"allowedRoles,omitempty" gorm:"many2many:task_allowed_roles;"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// OccursOn reports whether the task is eligible on the given day
func (t *Task) OccursOn(day DayOfWeek) bool {
	for _, d := range t.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// AllowsAnyRole reports whether any of the given roles is allowed for the task
func (t *Task) AllowsAnyRole(roles []Role) bool {
	for _, allowed := range t.AllowedRoles {
		for _, r := range roles {
			if allowed.ID == r.ID {
				return true
			}
		}
	}
	return false
}
