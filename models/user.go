package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleOrganizer   UserRole = "organizer"
	UserRoleCoordinator UserRole = "coordinator"
	UserRoleMember      UserRole = "member"
)

// Elevated reports whether the role may reach the form builder at all.
func (r UserRole) Elevated() bool {
	return r == UserRoleAdmin || r == UserRoleOrganizer || r == UserRoleCoordinator
}

// ManagesAnyForm reports whether the role acts on forms it did not create.
func (r UserRole) ManagesAnyForm() bool {
	return r == UserRoleAdmin || r == UserRoleOrganizer
}

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	FullName  *string   `gorm:"size:100" json:"full_name,omitempty"`
	Role      UserRole  `gorm:"type:user_role;default:'member';not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
