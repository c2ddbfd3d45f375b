package models

import "time"

// User is a member of the community. Only enabled users are schedulable.
type User struct {
	BaseModel
	Email     string       `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email"`
	Password  string       `json:"-" gorm:"size:100"`
	Name      string       `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Surname   string       `json:"surname" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	EntryDate time.Time    `json:"entryDate" gorm:"type:date"`
	Provider  AuthProvider `json:"provider" gorm:"type:varchar(20);not null;default:'LOCAL'"`
	Enabled   bool         `json:"enabled" gorm:"default:true"`

	// Relationships
	Roles []Role `json:"roles,omitempty" gorm:"many2many:user_roles;"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasRoleOfType reports whether the user holds any role of the given type
func (u *User) HasRoleOfType(t RoleType) bool {
	for _, r := range u.Roles {
		if r.Type == t {
			return true
		}
	}
	return false
}

// IsSupervisor reports whether the user may approve obstacles and
// trigger schedule generation.
func (u *User) IsSupervisor() bool {
	return u.HasRoleOfType(RoleTypeSupervisor)
}

// FullName returns "Name Surname" for display strings
func (u *User) FullName() string {
	return u.Name + " " + u.Surname
}
