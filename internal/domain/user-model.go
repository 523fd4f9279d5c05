package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the enumerated roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:user" json:"role"`
	Balance      float64 `gorm:"not null;default:0" json:"balance"`

	// ResetToken and ResetTokenExpiresAt are set together on a
	// forgot-password request and cleared together on a successful reset.
	ResetToken          string     `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	gorm.Model
}
