package models

import (
	"time"

	"gorm.io/datatypes"
)

// AppRole names a portal role resolved for an authenticated identity.
type AppRole string

const (
	RoleStudent AppRole = "student"
	RoleAdmin   AppRole = "admin"
)

// UserRole maps an identity to its portal role. A missing row is not an
// error; it resolves to the student role.
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	Role      AppRole   `gorm:"size:32;not null;default:student" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile carries the displayable identity fields for a user. All fields are
// optional; absent profiles render as "not assigned" placeholders.
type Profile struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      string            `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	FullName    string            `gorm:"size:255" json:"full_name"`
	Department  string            `gorm:"size:128" json:"department"`
	RollNumber  string            `gorm:"size:64" json:"roll_number"`
	Phone       string            `gorm:"size:32" json:"phone"`
	AvatarURL   string            `gorm:"size:512" json:"avatar_url"`
	Preferences datatypes.JSONMap `gorm:"type:json" json:"preferences"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
