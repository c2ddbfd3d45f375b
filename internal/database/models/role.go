package models

// Role is a named capability users hold and tasks require.
// SYSTEM-typed roles are managed by the application itself: only display
// metadata may be edited and they can never be deleted.
type Role struct {
	BaseModel
	Name                         string   `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Type                         RoleType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	SortOrder                    int64    `json:"sortOrder" gorm:"not null;default:0"`
	WeeklyScheduleCreatorDefault bool     `json:"weeklyScheduleCreatorDefault" gorm:"default:false"`
	AreTasksVisibleInPrints      bool     `json:"areTasksVisibleInPrints" gorm:"default:true"`
	AssignedTasksGroupName       string   `json:"assignedTasksGroupName" gorm:"size:100"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// IsSystem reports whether the role is application-managed
func (r *Role) IsSystem() bool {
	return r.Type == RoleTypeSystem
}
