// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role is the permission level assigned to a user account.
// Levels are ordered: user < admin < owner.
type Role string

const (
	// RoleUser is the default role for every signup after the first.
	RoleUser Role = "user"
	// RoleAdmin can moderate content and delete non-owner accounts.
	RoleAdmin Role = "admin"
	// RoleOwner is assigned to the very first account and is immutable.
	RoleOwner Role = "owner"
)

// CanModerate reports whether the role grants access to moderation endpoints.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleOwner
}

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the self-view of an account returned by GET /users/me,
// including the three relationship sets as user ID lists.
type Profile struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Followers    []uint `json:"followers"`
	Following    []uint `json:"following"`
	BlockedUsers []uint `json:"blockedUsers"`
}
