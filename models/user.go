package models

import (
	"time"
)

// Role names are a closed set seeded at startup.
const (
	RoleTeamMember = "team_member"
	RoleTeamLead   = "team_lead"
)

type Role struct {
	RoleID      int       `gorm:"primaryKey;column:role_id" json:"role_id"`
	RoleName    string    `gorm:"column:role_name;size:50;unique" json:"role_name"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

type User struct {
	UserID      int       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	Email       string    `gorm:"column:email;size:100;unique;not null" json:"email"`
	Password    string    `gorm:"column:password;size:255;not null" json:"-"`
	RoleID      int       `gorm:"column:role_id;not null" json:"role_id"`
	Designation *string   `gorm:"column:designation;size:100" json:"designation,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}
