// models/user.go
package models

import "time"

// User and Role back the session gate and the admin console. They are not
// part of the scoring domain; the API only cares that a valid session exists.

type Role struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string `json:"name" gorm:"size:80;uniqueIndex"`
	Description string `json:"description" gorm:"size:255"`
}

func (Role) TableName() string { return "roles" }

type User struct {
	ID       string  `json:"id" gorm:"type:uuid;primaryKey"`
	Email    string  `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Username *string `json:"username" gorm:"size:255;uniqueIndex"`
	Password string  `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized

	// Login tracking
	LastLoginAt    *time.Time `json:"last_login_at"`
	CurrentLoginAt *time.Time `json:"current_login_at"`
	LastLoginIP    string     `json:"last_login_ip" gorm:"size:100"`
	CurrentLoginIP string     `json:"current_login_ip" gorm:"size:100"`
	LoginCount     int        `json:"login_count"`

	Active bool `json:"active" gorm:"not null;default:true"`

	Roles []Role `json:"roles" gorm:"many2many:user_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
